// Package streammock provides gomock mocks of the sam stream interfaces.
//
// The mocks follow mockgen's layout and are regenerated by the directive in
// sam/stream.go:
//
//	go generate ./sam
package streammock

import (
	reflect "reflect"

	header "github.com/ghettovoice/gohts/header"
	sam "github.com/ghettovoice/gohts/sam"
	gomock "go.uber.org/mock/gomock"
)

// MockStream is a mock of Stream interface.
type MockStream struct {
	ctrl     *gomock.Controller
	recorder *MockStreamMockRecorder
	isgomock struct{}
}

// MockStreamMockRecorder is the mock recorder for MockStream.
type MockStreamMockRecorder struct {
	mock *MockStream
}

// NewMockStream creates a new mock instance.
func NewMockStream(ctrl *gomock.Controller) *MockStream {
	mock := &MockStream{ctrl: ctrl}
	mock.recorder = &MockStreamMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStream) EXPECT() *MockStreamMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockStream) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockStreamMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStream)(nil).Close))
}

// WriteHeader mocks base method.
func (m *MockStream) WriteHeader(hdr *header.View) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteHeader", hdr)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteHeader indicates an expected call of WriteHeader.
func (mr *MockStreamMockRecorder) WriteHeader(hdr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteHeader", reflect.TypeOf((*MockStream)(nil).WriteHeader), hdr)
}

// WriteRecord mocks base method.
func (m *MockStream) WriteRecord(hdr *header.View, rec sam.Record) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteRecord", hdr, rec)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteRecord indicates an expected call of WriteRecord.
func (mr *MockStreamMockRecorder) WriteRecord(hdr, rec any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteRecord", reflect.TypeOf((*MockStream)(nil).WriteRecord), hdr, rec)
}

// MockOpener is a mock of Opener interface.
type MockOpener struct {
	ctrl     *gomock.Controller
	recorder *MockOpenerMockRecorder
	isgomock struct{}
}

// MockOpenerMockRecorder is the mock recorder for MockOpener.
type MockOpenerMockRecorder struct {
	mock *MockOpener
}

// NewMockOpener creates a new mock instance.
func NewMockOpener(ctrl *gomock.Controller) *MockOpener {
	mock := &MockOpener{ctrl: ctrl}
	mock.recorder = &MockOpenerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOpener) EXPECT() *MockOpenerMockRecorder {
	return m.recorder
}

// Open mocks base method.
func (m *MockOpener) Open(path string, mode sam.Mode) (sam.Stream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", path, mode)
	ret0, _ := ret[0].(sam.Stream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Open indicates an expected call of Open.
func (mr *MockOpenerMockRecorder) Open(path, mode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockOpener)(nil).Open), path, mode)
}
