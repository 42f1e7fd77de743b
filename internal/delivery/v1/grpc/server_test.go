package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/memory"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	log := logger.New(io.Discard, slog.LevelDebug)
	source := usecase.NewCatalogSource(nil, nil, memory.SampleProducts(), log)
	prUC := usecase.NewProductUC(source, log)

	srv := NewGRPCServer(&cfg.GRPCConfig{Port: "0", NetworkMode: "tcp"}, log)
	srv.RegisterServices(prUC)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		_ = srv.Stop(context.Background())
	})

	return conn
}

func TestHealthServing(t *testing.T) {
	conn := startServer(t)

	res, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: CatalogServiceName})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.GetStatus())
}

func TestListProductsFiltersByGender(t *testing.T) {
	conn := startServer(t)

	req, err := structpb.NewStruct(map[string]any{"gender": "women", "sort": "price_desc"})
	require.NoError(t, err)

	res := new(structpb.Struct)
	require.NoError(t, conn.Invoke(context.Background(), ListProductsMethod, req, res))

	products := res.GetFields()["products"].GetListValue().GetValues()
	require.NotEmpty(t, products)

	prev := products[0].GetStructValue().GetFields()["price"].GetNumberValue()
	for _, v := range products {
		fields := v.GetStructValue().GetFields()
		assert.Equal(t, "women", fields["gender"].GetStringValue())
		assert.LessOrEqual(t, fields["price"].GetNumberValue(), prev)
		prev = fields["price"].GetNumberValue()
	}
}

func TestGetProduct(t *testing.T) {
	conn := startServer(t)

	req, err := structpb.NewStruct(map[string]any{"id": "dior-heel-01"})
	require.NoError(t, err)

	res := new(structpb.Struct)
	require.NoError(t, conn.Invoke(context.Background(), GetProductMethod, req, res))
	assert.Equal(t, "dior-heel-01", res.GetFields()["id"].GetStringValue())
}

func TestGetProductErrors(t *testing.T) {
	conn := startServer(t)

	tests := []struct {
		name string
		id   string
		code codes.Code
	}{
		{name: "unknown id", id: "999", code: codes.NotFound},
		{name: "empty id", id: "", code: codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := structpb.NewStruct(map[string]any{"id": tt.id})
			require.NoError(t, err)

			err = conn.Invoke(context.Background(), GetProductMethod, req, new(structpb.Struct))
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}
