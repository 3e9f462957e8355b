package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"", "*logrus.TextFormatter", false},
		{FormatText, "*logrus.TextFormatter", false},
		{FormatJSON, "*logrus.JSONFormatter", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := newFormatter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("newFormatter(%q) expected an error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("newFormatter(%q) error = %v", tt.format, err)
			}
			switch f.(type) {
			case *logrus.TextFormatter:
				if tt.want != "*logrus.TextFormatter" {
					t.Errorf("got text formatter, want %s", tt.want)
				}
			case *logrus.JSONFormatter:
				if tt.want != "*logrus.JSONFormatter" {
					t.Errorf("got json formatter, want %s", tt.want)
				}
			}
		})
	}
}

func TestInitLog_InvalidLevel(t *testing.T) {
	if err := InitLog("loud", FormatText); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestGetLogger_RequestId(t *testing.T) {
	ctx := WithRequestId(context.Background(), "abc")
	if got := GetLogger(ctx).Data[CtxRequestId]; got != "abc" {
		t.Errorf("requestId field = %v", got)
	}
	if _, ok := GetLogger(context.Background()).Data[CtxRequestId]; ok {
		t.Error("a context without request id must not add the field")
	}
}
