package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type recordingLogger struct {
	logging.Nop
	kv []any
}

func (r *recordingLogger) Debug(_ context.Context, _ string, kv ...any) { r.kv = kv }
func (r *recordingLogger) With(...any) logging.Logger                   { return r }

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	l := &recordingLogger{}
	s := NewGRPCServer("", l, nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if len(l.kv) < 4 || l.kv[1] != info.FullMethod || l.kv[3] != "OK" {
		t.Fatalf("unexpected log fields: %v", l.kv)
	}
}

func TestLoggingInterceptor_ReportsCode(t *testing.T) {
	l := &recordingLogger{}
	s := NewGRPCServer("", l, nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/x/Y"}

	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("code = %v", status.Code(err))
	}
	if l.kv[3] != "Unavailable" {
		t.Fatalf("code field = %v", l.kv[3])
	}
}
