package ticket

import (
	"testing"
	"time"
)

func TestCancelDelete(t *testing.T) {
	ScheduleDelete(nil, "ch1", time.Hour, "test")

	if !CancelDelete("ch1") {
		t.Error("first cancel should report a pending deletion")
	}
	if CancelDelete("ch1") {
		t.Error("second cancel should report nothing pending")
	}
}

func TestCancelDeleteUnknownChannel(t *testing.T) {
	if CancelDelete("never-scheduled") {
		t.Error("unknown channel should report nothing pending")
	}
}

func TestScheduleDeleteReplacesTimer(t *testing.T) {
	ScheduleDelete(nil, "ch2", time.Hour, "first")
	ScheduleDelete(nil, "ch2", time.Hour, "second")

	if !CancelDelete("ch2") {
		t.Error("rescheduled deletion should still be cancellable")
	}
	if CancelDelete("ch2") {
		t.Error("only one timer should exist per channel")
	}
}

func TestForget(t *testing.T) {
	ScheduleDelete(nil, "ch3", time.Hour, "test")
	Forget("ch3")
	if CancelDelete("ch3") {
		t.Error("forgotten channel should have no pending timer")
	}
}
