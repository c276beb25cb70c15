package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dpetrovs/heirvault/internal/logging"
	pb "github.com/dpetrovs/heirvault/internal/proto"
	"github.com/dpetrovs/heirvault/internal/server/services"
)

// GRPCServer exposes the vault API. Handlers stay thin: argument mapping,
// service call, sentinel-to-status translation.
type GRPCServer struct {
	pb.UnimplementedHeirVaultServiceServer
	address   string
	vaults    *services.VaultService
	invites   *services.InviteService
	payments  *services.PaymentService
	uploads   *services.UploadService
	contents  *services.ContentService
	settings  *services.SettingsService
	scheduler *services.Scheduler
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, vaultSvc *services.VaultService,
	inviteSvc *services.InviteService, paymentSvc *services.PaymentService,
	uploadSvc *services.UploadService, contentSvc *services.ContentService,
	settingsSvc *services.SettingsService, scheduler *services.Scheduler,
	secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		vaults:    vaultSvc,
		invites:   inviteSvc,
		payments:  paymentSvc,
		uploads:   uploadSvc,
		contents:  contentSvc,
		settings:  settingsSvc,
		scheduler: scheduler,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterHeirVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
