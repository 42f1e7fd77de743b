package grpc

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// CatalogServiceName — полное имя gRPC-сервиса каталога.
const CatalogServiceName = "storefront.v1.Catalog"

// Полные имена методов сервиса каталога
const (
	ListProductsMethod = "/" + CatalogServiceName + "/ListProducts"
	GetProductMethod   = "/" + CatalogServiceName + "/GetProduct"
)

// CatalogServer даёт read-only доступ к каталогу для внутренних сервисов.
// Запросы и ответы передаются как google.protobuf.Struct с теми же полями, что и в HTTP API.
type CatalogServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type CatalogService struct {
	prUC   usecase.ProductUC
	logger logger.Logger
}

func NewCatalogService(prUC usecase.ProductUC, logger logger.Logger) *CatalogService {
	return &CatalogService{prUC: prUC, logger: logger}
}

// ListProducts принимает {gender?, category?, q?, sort?} и возвращает {products: [...]}.
func (g *CatalogService) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListProducts"

	products := g.prUC.ListProducts(ctx, usecase.NewProductQuery(
		stringField(req, "gender"),
		stringField(req, "category"),
		stringField(req, "q"),
		stringField(req, "sort"),
	))

	items := make([]any, 0, len(products))
	for i := range products {
		items = append(items, toGRPCProduct(&products[i]))
	}

	res, err := structpb.NewStruct(map[string]any{"products": items})
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return res, nil
}

// GetProduct принимает {id} и возвращает товар или NotFound.
func (g *CatalogService) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProduct"

	id := stringField(req, "id")
	if id == "" {
		return nil, GRPCErrorResponse(e.Wrap(op, e.ErrStatusBadRequest))
	}

	product, err := g.prUC.GetProduct(ctx, id)
	if err != nil {
		g.logger.Debugf("%s: %v", op, err)
		return nil, GRPCErrorResponse(err)
	}

	res, err := structpb.NewStruct(toGRPCProduct(product))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return res, nil
}

func stringField(s *structpb.Struct, key string) string {
	if s == nil {
		return ""
	}

	return s.GetFields()[key].GetStringValue()
}

func toGRPCProduct(p *domain.Product) map[string]any {
	var description any
	if p.Description != nil {
		description = *p.Description
	}

	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"gender":      p.Gender,
		"category":    p.Category,
		"sizes":       toAnySlice(p.Sizes),
		"images":      toAnySlice(p.Images),
		"description": description,
		"tags":        toAnySlice(p.Tags),
		"featured":    p.Featured,
		"new_arrival": p.NewArrival,
	}
}

func toAnySlice(values []string) []any {
	res := make([]any, len(values))
	for i, v := range values {
		res[i] = v
	}

	return res
}

// catalogServiceDesc описывает сервис без сгенерированного кода: все сообщения имеют тип structpb.Struct.
var catalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: listProductsHandler},
		{MethodName: "GetProduct", Handler: getProductHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/catalog.proto",
}

func listProductsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).ListProducts(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListProductsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).ListProducts(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getProductHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).GetProduct(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetProductMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).GetProduct(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
