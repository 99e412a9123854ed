package ctxutil

import (
	"context"
	"testing"
)

func TestContextData(t *testing.T) {
	ctx := context.Background()
	if GetTraceData(ctx) != nil || GetRequestData(ctx) != nil {
		t.Fatalf("expected empty context to carry no data")
	}
	//nolint:staticcheck // nil context is handled explicitly
	if GetTraceData(nil) != nil || GetRequestData(nil) != nil {
		t.Fatalf("expected nil context to carry no data")
	}

	ctx = WithTraceData(ctx, &TraceData{TraceID: "t", RequestID: "r"})
	ctx = WithRequestData(ctx, &RequestData{UserID: 42})
	if td := GetTraceData(ctx); td == nil || td.TraceID != "t" || td.RequestID != "r" {
		t.Fatalf("unexpected trace data: %+v", td)
	}
	if rd := GetRequestData(ctx); rd == nil || rd.UserID != 42 {
		t.Fatalf("unexpected request data: %+v", rd)
	}
	if Default(nil) == nil {
		t.Fatalf("Default(nil) returned nil")
	}
}
