package server

import (
	"bytes"
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/starrail-backend/internal/api"
	"github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/converter"
	"github.com/xtding233/starrail-backend/internal/service"
)

const analyticsServiceName = "starrail.v1.Analytics"

// AnalyticsServer carries the HTTP request and response bodies as
// google.protobuf.Struct, so both transports share one wire shape.
type AnalyticsServer interface {
	ProbabilityRate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	JadeEstimate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterAnalyticsServer(s grpc.ServiceRegistrar, srv AnalyticsServer) {
	s.RegisterService(&analyticsServiceDesc, srv)
}

var analyticsServiceDesc = grpc.ServiceDesc{
	ServiceName: analyticsServiceName,
	HandlerType: (*AnalyticsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ProbabilityRate", Handler: unary(AnalyticsServer.ProbabilityRate, "ProbabilityRate")},
		{MethodName: "JadeEstimate", Handler: unary(AnalyticsServer.JadeEstimate, "JadeEstimate")},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "starrail/v1/analytics.proto",
}

type unaryMethod func(AnalyticsServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(call unaryMethod, name string) grpc.MethodHandler {
	fullMethod := "/" + analyticsServiceName + "/" + name
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AnalyticsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AnalyticsServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Analytics implements AnalyticsServer on the service layer.
type Analytics struct {
	gacha service.GachaService
	jade  service.JadeService
}

func NewAnalytics(gacha service.GachaService, jade service.JadeService) *Analytics {
	return &Analytics{gacha: gacha, jade: jade}
}

func (a *Analytics) ProbabilityRate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := fromStruct[dto.ProbabilityRateRequest](in)
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := a.gacha.ProbabilityRate(ctx, converter.ToPullState(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(converter.ToProbabilityRateResponse(*res))
}

func (a *Analytics) JadeEstimate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := fromStruct[dto.EstimateRequest](in)
	if err != nil {
		return nil, toStatus(err)
	}
	cfg, err := converter.ToEstimateCfg(req)
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := a.jade.JadeEstimate(ctx, cfg)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(converter.ToEstimateResponse(*res))
}

func fromStruct[T any](in *structpb.Struct) (T, error) {
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		var zero T
		return zero, apperr.ParseData("%v", err)
	}
	return api.Decode[T](bytes.NewReader(raw))
}

func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toStatus(err error) error {
	return status.Error(apperr.GRPCCode(err), err.Error())
}
