package grpc

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"agenda/backend/internal/domain"
	agendav1 "agenda/backend/internal/gen/proto/agenda/v1"
	"agenda/backend/internal/service/appointments"
	"agenda/backend/internal/store"
	"agenda/backend/internal/store/memory"
)

type fakeAppointmentsService struct {
	createFn func(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error)
	updateFn func(ctx context.Context, in appointments.UpdateInput) (domain.Appointment, error)
	getFn    func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	listFn   func(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
	deleteFn func(ctx context.Context, appointmentID uuid.UUID) error
}

func (f *fakeAppointmentsService) Create(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, in)
}

func (f *fakeAppointmentsService) Update(ctx context.Context, in appointments.UpdateInput) (domain.Appointment, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, in)
}

func (f *fakeAppointmentsService) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, appointmentID)
}

func (f *fakeAppointmentsService) List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, sellerID, windowStart, windowEnd)
}

func (f *fakeAppointmentsService) Delete(ctx context.Context, appointmentID uuid.UUID) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, appointmentID)
}

func validCreateRequest() *agendav1.CreateAppointmentRequest {
	start := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	return &agendav1.CreateAppointmentRequest{
		SellerId:   "seller-1",
		ClientName: "Client A",
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(start.Add(time.Hour)),
	}
}

func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("status %v carries no ErrorInfo", st)
	return nil
}

func TestIdempotencyKey_ReadsHeadersAndTrims(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", "  abc  "))
	if got := idempotencyKey(ctx); got != "abc" {
		t.Fatalf("idempotencyKey = %q, want %q", got, "abc")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-idempotency-key", "xyz"))
	if got := idempotencyKey(ctx); got != "xyz" {
		t.Fatalf("idempotencyKey = %q, want %q", got, "xyz")
	}

	if got := idempotencyKey(context.Background()); got != "" {
		t.Fatalf("idempotencyKey without metadata = %q, want empty", got)
	}
}

func TestCreateAppointment_RejectsMissingTimes(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{}, slog.Default())

	_, err := srv.CreateAppointment(context.Background(), &agendav1.CreateAppointmentRequest{
		SellerId: "seller-1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateAppointment_PassesIdempotencyKeyToService(t *testing.T) {
	var got appointments.CreateInput

	srv := NewAppointmentsServer(&fakeAppointmentsService{
		createFn: func(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000010")}, nil
		},
	}, slog.Default())

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", "k1"))
	resp, err := srv.CreateAppointment(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateAppointment error: %v", err)
	}
	if got.IdempotencyKey != "k1" {
		t.Fatalf("idempotency_key = %q, want %q", got.IdempotencyKey, "k1")
	}
	if got.SellerID != "seller-1" || got.ClientName != "Client A" {
		t.Fatalf("input = %+v", got)
	}
	if resp.GetAppointment().GetId() != "00000000-0000-0000-0000-000000000010" {
		t.Fatalf("id = %q", resp.GetAppointment().GetId())
	}
}

func TestCreateAppointment_MapsSchedulingConflict(t *testing.T) {
	conflicting := uuid.MustParse("00000000-0000-0000-0000-000000000030")
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		createFn: func(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error) {
			return domain.Appointment{}, &appointments.ValidationError{Kind: appointments.KindSchedulingConflict, ConflictingID: conflicting}
		},
	}, slog.Default())

	_, err := srv.CreateAppointment(context.Background(), validCreateRequest())
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
	info := errorInfo(t, err)
	if info.Reason != "SCHEDULING_CONFLICT" {
		t.Fatalf("reason = %q", info.Reason)
	}
	if info.Metadata["conflicting_appointment_id"] != conflicting.String() {
		t.Fatalf("metadata = %v", info.Metadata)
	}
}

func TestCreateAppointment_MapsValidationErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantReason string
	}{
		{err: appointments.ErrMissingSeller, wantReason: "MISSING_SELLER"},
		{err: appointments.ErrInvalidRange, wantReason: "INVALID_RANGE"},
		{err: appointments.ErrMissingClientName, wantReason: "MISSING_CLIENT_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.wantReason, func(t *testing.T) {
			srv := NewAppointmentsServer(&fakeAppointmentsService{
				createFn: func(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error) {
					return domain.Appointment{}, tt.err
				},
			}, slog.Default())

			_, err := srv.CreateAppointment(context.Background(), validCreateRequest())
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
			}
			if msg := status.Convert(err).Message(); msg != tt.err.Error() {
				t.Fatalf("message = %q, want %q", msg, tt.err.Error())
			}
			if info := errorInfo(t, err); info.Reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", info.Reason, tt.wantReason)
			}
		})
	}
}

func TestCreateAppointment_MapsIdempotencyConflict(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		createFn: func(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrIdempotencyConflict
		},
	}, slog.Default())

	_, err := srv.CreateAppointment(context.Background(), validCreateRequest())
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestUpdateAppointment_RejectsInvalidUUID(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{}, slog.Default())

	_, err := srv.UpdateAppointment(context.Background(), &agendav1.UpdateAppointmentRequest{AppointmentId: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestGetAppointment_MapsNotFound(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		getFn: func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	}, slog.Default())

	_, err := srv.GetAppointment(context.Background(), &agendav1.GetAppointmentRequest{AppointmentId: "00000000-0000-0000-0000-000000000020"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}

func TestDeleteAppointment_RejectsInvalidUUID(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{}, slog.Default())

	_, err := srv.DeleteAppointment(context.Background(), &agendav1.DeleteAppointmentRequest{
		AppointmentId: "not-a-uuid",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestDeleteAppointment_MapsCanceled(t *testing.T) {
	srv := NewAppointmentsServer(&fakeAppointmentsService{
		deleteFn: func(ctx context.Context, appointmentID uuid.UUID) error {
			return context.Canceled
		},
	}, slog.Default())

	_, err := srv.DeleteAppointment(context.Background(), &agendav1.DeleteAppointmentRequest{AppointmentId: "00000000-0000-0000-0000-000000000020"})
	if status.Code(err) != codes.Canceled {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.Canceled)
	}
}

func TestAppointmentsServer_EndToEnd(t *testing.T) {
	st := memory.New()
	st.AddSeller(domain.Seller{ID: "seller-1"})
	svc := appointments.NewService(st)

	lis := bufconn.Listen(1 << 20)
	server := grpclib.NewServer()
	agendav1.RegisterAppointmentsServiceServer(server, NewAppointmentsServer(svc, slog.Default()))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	client := agendav1.NewAppointmentsServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateAppointment(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateAppointment error: %v", err)
	}

	overlap := validCreateRequest()
	overlap.ClientName = "Client B"
	overlap.StartTime = timestamppb.New(overlap.StartTime.AsTime().Add(30 * time.Minute))
	overlap.EndTime = timestamppb.New(overlap.EndTime.AsTime().Add(30 * time.Minute))
	_, err = client.CreateAppointment(ctx, overlap)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
	if got := errorInfo(t, err).Metadata["conflicting_appointment_id"]; got != created.GetAppointment().GetId() {
		t.Fatalf("conflicting id = %q, want %q", got, created.GetAppointment().GetId())
	}

	list, err := client.ListAppointments(ctx, &agendav1.ListAppointmentsRequest{
		SellerId:    "seller-1",
		WindowStart: timestamppb.New(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   timestamppb.New(time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(list.GetAppointments()) != 1 {
		t.Fatalf("listed %d appointments, want 1", len(list.GetAppointments()))
	}

	if _, err := client.DeleteAppointment(ctx, &agendav1.DeleteAppointmentRequest{AppointmentId: created.GetAppointment().GetId()}); err != nil {
		t.Fatalf("DeleteAppointment error: %v", err)
	}
	if _, err := client.CreateAppointment(ctx, overlap); err != nil {
		t.Fatalf("CreateAppointment after delete error: %v", err)
	}
}
