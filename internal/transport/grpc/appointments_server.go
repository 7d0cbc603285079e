package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"agenda/backend/internal/domain"
	agendav1 "agenda/backend/internal/gen/proto/agenda/v1"
	"agenda/backend/internal/service/appointments"
	"agenda/backend/internal/store"
)

const errorDomain = "agenda.v1"

type AppointmentsServer struct {
	agendav1.UnimplementedAppointmentsServiceServer

	svc appointmentsService
	log *slog.Logger
}

type appointmentsService interface {
	Create(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error)
	Update(ctx context.Context, in appointments.UpdateInput) (domain.Appointment, error)
	Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
	Delete(ctx context.Context, appointmentID uuid.UUID) error
}

func NewAppointmentsServer(svc appointmentsService, log *slog.Logger) *AppointmentsServer {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.appointments")),
	}
}

func (s *AppointmentsServer) CreateAppointment(ctx context.Context, req *agendav1.CreateAppointmentRequest) (*agendav1.CreateAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.StartTime == nil || req.EndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("seller_id", req.SellerId))
		return nil, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}

	appt, err := s.svc.Create(ctx, appointments.CreateInput{
		SellerID:       req.SellerId,
		ClientName:     req.ClientName,
		Notes:          req.Notes,
		StartTime:      req.StartTime.AsTime(),
		EndTime:        req.EndTime.AsTime(),
		IdempotencyKey: idempotencyKey(ctx),
	})
	if err != nil {
		return nil, errorStatus(log.With(
			slog.String("seller_id", req.SellerId),
			slog.Time("start_time", req.StartTime.AsTime()),
			slog.Time("end_time", req.EndTime.AsTime()),
		), "appointment create", err)
	}

	log.Info(
		"appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("seller_id", appt.SellerID),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)

	return &agendav1.CreateAppointmentResponse{
		Appointment: toProtoAppointment(appt),
	}, nil
}

func (s *AppointmentsServer) UpdateAppointment(ctx context.Context, req *agendav1.UpdateAppointmentRequest) (*agendav1.UpdateAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("seller_id", req.SellerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}
	if req.StartTime == nil || req.EndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}

	appt, err := s.svc.Update(ctx, appointments.UpdateInput{
		AppointmentID: id,
		SellerID:      req.SellerId,
		ClientName:    req.ClientName,
		Notes:         req.Notes,
		StartTime:     req.StartTime.AsTime(),
		EndTime:       req.EndTime.AsTime(),
	})
	if err != nil {
		return nil, errorStatus(log.With(
			slog.String("appointment_id", id.String()),
			slog.String("seller_id", req.SellerId),
		), "appointment update", err)
	}

	log.Info(
		"appointment updated",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("seller_id", appt.SellerID),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)

	return &agendav1.UpdateAppointmentResponse{
		Appointment: toProtoAppointment(appt),
	}, nil
}

func (s *AppointmentsServer) GetAppointment(ctx context.Context, req *agendav1.GetAppointmentRequest) (*agendav1.GetAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, errorStatus(log.With(slog.String("appointment_id", id.String())), "appointment get", err)
	}

	return &agendav1.GetAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func idempotencyKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("idempotency-key")
	if len(values) == 0 {
		values = md.Get("x-idempotency-key")
	}
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func (s *AppointmentsServer) ListAppointments(ctx context.Context, req *agendav1.ListAppointmentsRequest) (*agendav1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.WindowStart == nil || req.WindowEnd == nil {
		log.Warn("invalid request", slog.String("reason", "missing_window"), slog.String("seller_id", req.SellerId))
		return nil, status.Error(codes.InvalidArgument, "window_start and window_end are required")
	}

	appts, err := s.svc.List(ctx, req.SellerId, req.WindowStart.AsTime(), req.WindowEnd.AsTime())
	if err != nil {
		return nil, errorStatus(log.With(slog.String("seller_id", req.SellerId)), "appointments list", err)
	}

	out := make([]*agendav1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug(
		"appointments listed",
		slog.String("seller_id", req.SellerId),
		slog.Int("count", len(out)),
		slog.Time("window_start", req.WindowStart.AsTime()),
		slog.Time("window_end", req.WindowEnd.AsTime()),
	)

	return &agendav1.ListAppointmentsResponse{Appointments: out}, nil
}

func (s *AppointmentsServer) DeleteAppointment(ctx context.Context, req *agendav1.DeleteAppointmentRequest) (*agendav1.DeleteAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "DeleteAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	if err := s.svc.Delete(ctx, id); err != nil {
		return nil, errorStatus(log.With(slog.String("appointment_id", id.String())), "appointment delete", err)
	}

	log.Info("appointment deleted", slog.String("appointment_id", id.String()))
	return &agendav1.DeleteAppointmentResponse{}, nil
}

// errorStatus logs err at a level matching its cause and converts it into
// the status returned to the caller. Validation messages are passed through
// verbatim.
func errorStatus(log *slog.Logger, op string, err error) error {
	var vErr *appointments.ValidationError
	switch {
	case errors.As(err, &vErr) && vErr.Kind == appointments.KindSchedulingConflict:
		log.Info(op+" conflict", slog.String("conflicting_appointment_id", idOrEmpty(vErr.ConflictingID)))
		md := map[string]string{}
		if vErr.ConflictingID != uuid.Nil {
			md["conflicting_appointment_id"] = vErr.ConflictingID.String()
		}
		return withReason(codes.FailedPrecondition, "The seller already has an appointment during that time. Pick a different slot.", vErr.Kind, md)
	case errors.As(err, &vErr):
		log.Warn("invalid request", slog.Any("err", err))
		return withReason(codes.InvalidArgument, vErr.Error(), vErr.Kind, nil)
	case errors.Is(err, store.ErrIdempotencyConflict):
		log.Info(op+" idempotency conflict")
		return status.Error(codes.FailedPrecondition, "This request key was already used for a different appointment. Try again.")
	case errors.Is(err, store.ErrNotFound):
		log.Info("appointment not found")
		return status.Error(codes.NotFound, "appointment not found")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn(op+" timed out", slog.Any("err", err))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	}
	log.Error(op+" failed", slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}

func withReason(code codes.Code, msg string, kind appointments.Kind, md map[string]string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(kind)),
		Domain:   errorDomain,
		Metadata: md,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func toProtoAppointment(a domain.Appointment) *agendav1.Appointment {
	return &agendav1.Appointment{
		Id:         a.ID.String(),
		SellerId:   a.SellerID,
		ClientName: a.ClientName,
		Notes:      a.Notes,
		StartTime:  timestamppb.New(a.StartTime),
		EndTime:    timestamppb.New(a.EndTime),
		CreatedAt:  timestamppb.New(a.CreatedAt),
		UpdatedAt:  timestamppb.New(a.UpdatedAt),
	}
}
