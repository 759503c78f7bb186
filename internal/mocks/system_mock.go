package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/trackedspace/trackviz/pkg/openvr"
)

// MockSystem is a mock implementation of the openvr.System interface
type MockSystem struct {
	mock.Mock
}

func (m *MockSystem) DevicePoses(origin openvr.TrackingUniverse) ([]openvr.TrackedDevicePose, error) {
	args := m.Called(origin)
	poses, _ := args.Get(0).([]openvr.TrackedDevicePose)
	return poses, args.Error(1)
}

func (m *MockSystem) DeviceClass(index openvr.TrackedDeviceIndex) openvr.DeviceClass {
	args := m.Called(index)
	return args.Get(0).(openvr.DeviceClass)
}

func (m *MockSystem) ControllerRole(index openvr.TrackedDeviceIndex) openvr.ControllerRole {
	args := m.Called(index)
	return args.Get(0).(openvr.ControllerRole)
}

func (m *MockSystem) ControllerState(index openvr.TrackedDeviceIndex) (openvr.ControllerState, bool) {
	args := m.Called(index)
	return args.Get(0).(openvr.ControllerState), args.Bool(1)
}

func (m *MockSystem) StringProperty(index openvr.TrackedDeviceIndex, prop openvr.DeviceProperty) (string, error) {
	args := m.Called(index, prop)
	return args.String(0), args.Error(1)
}

func (m *MockSystem) RuntimeVersion() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSystem) Close() error {
	args := m.Called()
	return args.Error(0)
}
