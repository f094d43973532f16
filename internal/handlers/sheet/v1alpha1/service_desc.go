package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "bh2e.sheet.v1alpha1.SheetService"

// Method names of the sheet service
const (
	MethodRollUsageDie        = "RollUsageDie"
	MethodResetUsageDie       = "ResetUsageDie"
	MethodResetAllUsageDice   = "ResetAllUsageDice"
	MethodBreakArmourDie      = "BreakArmourDie"
	MethodRepairArmourDie     = "RepairArmourDie"
	MethodRepairAllArmourDice = "RepairAllArmourDice"
	MethodIncrementQuantity   = "IncrementQuantity"
	MethodDecrementQuantity   = "DecrementQuantity"
	MethodPrepareMagic        = "PrepareMagic"
	MethodUnprepareMagic      = "UnprepareMagic"
	MethodCastMagic           = "CastMagic"
	MethodAttack              = "Attack"
	MethodAttributeTest       = "AttributeTest"
	MethodDeleteItem          = "DeleteItem"
	MethodGetCharacterSheet   = "GetCharacterSheet"
	MethodGetCreatureSheet    = "GetCreatureSheet"
)

// FullMethodName returns the gRPC path of a sheet service method
func FullMethodName(method string) string {
	return "/" + ServiceName + "/" + method
}

// SheetServiceServer is the server API for the sheet service. Every RPC takes and
// returns a google.protobuf.Struct.
type SheetServiceServer interface {
	RollUsageDie(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetUsageDie(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetAllUsageDice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BreakArmourDie(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RepairArmourDie(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RepairAllArmourDice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IncrementQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DecrementQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PrepareMagic(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnprepareMagic(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CastMagic(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Attack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AttributeTest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacterSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCreatureSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethodName(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SheetServiceDesc describes the sheet service for grpc.ServiceRegistrar
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodRollUsageDie, SheetServiceServer.RollUsageDie),
		unaryHandler(MethodResetUsageDie, SheetServiceServer.ResetUsageDie),
		unaryHandler(MethodResetAllUsageDice, SheetServiceServer.ResetAllUsageDice),
		unaryHandler(MethodBreakArmourDie, SheetServiceServer.BreakArmourDie),
		unaryHandler(MethodRepairArmourDie, SheetServiceServer.RepairArmourDie),
		unaryHandler(MethodRepairAllArmourDice, SheetServiceServer.RepairAllArmourDice),
		unaryHandler(MethodIncrementQuantity, SheetServiceServer.IncrementQuantity),
		unaryHandler(MethodDecrementQuantity, SheetServiceServer.DecrementQuantity),
		unaryHandler(MethodPrepareMagic, SheetServiceServer.PrepareMagic),
		unaryHandler(MethodUnprepareMagic, SheetServiceServer.UnprepareMagic),
		unaryHandler(MethodCastMagic, SheetServiceServer.CastMagic),
		unaryHandler(MethodAttack, SheetServiceServer.Attack),
		unaryHandler(MethodAttributeTest, SheetServiceServer.AttributeTest),
		unaryHandler(MethodDeleteItem, SheetServiceServer.DeleteItem),
		unaryHandler(MethodGetCharacterSheet, SheetServiceServer.GetCharacterSheet),
		unaryHandler(MethodGetCreatureSheet, SheetServiceServer.GetCreatureSheet),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bh2e/sheet/v1alpha1/sheet.proto",
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// SheetServiceClient calls sheet service methods by name
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client on cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

// Call invokes method with req and returns the response payload
func (c *SheetServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethodName(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
