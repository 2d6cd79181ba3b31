package api

import (
	"errors"
	"fmt"
	"net/http"

	"hotel-reservation/hotel"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

var errStayOrder = fmt.Errorf("%w: check-out must be after check-in", hotel.ErrInvalidDate)

type Handler struct {
	mgr *hotel.HotelManager
	log *zap.SugaredLogger
}

func NewHandler(mgr *hotel.HotelManager, log *zap.SugaredLogger) *Handler {
	return &Handler{mgr: mgr, log: log}
}

// Routes builds the router for the reservation API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
		r.Get("/{email}", h.GetCustomer)
		r.Get("/{email}/reservations", h.CustomerReservations)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.AddRoom)
		r.Get("/", h.ListRooms)
		r.Get("/{number}", h.GetRoom)
	})

	r.Get("/availability", h.Availability)

	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.CreateReservation)
		r.Get("/", h.ListReservations)
	})

	return r
}

func (h *Handler) Health(rw http.ResponseWriter, r *http.Request) {
	respond(rw, http.StatusOK, map[string]string{"status": "ok"})
}

// ------------------ Customers ------------------

func (h *Handler) CreateCustomer(rw http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decode(r, &req); err != nil {
		h.fail(rw, r, "CreateCustomer", fmt.Errorf("%w: %v", errBadBody, err))
		return
	}

	if err := h.mgr.RegisterCustomer(req.Email, req.FirstName, req.LastName); err != nil {
		h.fail(rw, r, "CreateCustomer", err)
		return
	}
	customer, _ := h.mgr.LookupCustomer(req.Email)
	respond(rw, http.StatusCreated, customer)
}

func (h *Handler) ListCustomers(rw http.ResponseWriter, r *http.Request) {
	respond(rw, http.StatusOK, h.mgr.AllCustomers())
}

func (h *Handler) GetCustomer(rw http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	customer, ok := h.mgr.LookupCustomer(email)
	if !ok {
		h.fail(rw, r, "GetCustomer", fmt.Errorf("%w: %s", hotel.ErrCustomerNotFound, email))
		return
	}
	respond(rw, http.StatusOK, customer)
}

func (h *Handler) CustomerReservations(rw http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if _, ok := h.mgr.LookupCustomer(email); !ok {
		h.fail(rw, r, "CustomerReservations", fmt.Errorf("%w: %s", hotel.ErrCustomerNotFound, email))
		return
	}

	reservations, err := h.mgr.ReservationsOf(email)
	if err != nil {
		h.fail(rw, r, "CustomerReservations", err)
		return
	}
	respond(rw, http.StatusOK, toReservationResponses(reservations))
}

// ------------------ Rooms ------------------

func (h *Handler) AddRoom(rw http.ResponseWriter, r *http.Request) {
	var room hotel.Room
	if err := decode(r, &room); err != nil {
		h.fail(rw, r, "AddRoom", fmt.Errorf("%w: %v", errBadBody, err))
		return
	}
	switch {
	case room.Number == "":
		h.fail(rw, r, "AddRoom", fmt.Errorf("%w: missing roomNumber", errBadBody))
		return
	case room.Price < 0:
		h.fail(rw, r, "AddRoom", fmt.Errorf("%w: %v", hotel.ErrInvalidPrice, room.Price))
		return
	case !room.Type.Valid():
		h.fail(rw, r, "AddRoom", hotel.ErrInvalidRoomType)
		return
	}

	if err := h.mgr.AddRoom(room); err != nil {
		h.fail(rw, r, "AddRoom", err)
		return
	}
	respond(rw, http.StatusCreated, room)
}

func (h *Handler) ListRooms(rw http.ResponseWriter, r *http.Request) {
	rooms, err := h.mgr.AllRooms()
	if err != nil {
		h.fail(rw, r, "ListRooms", err)
		return
	}
	respond(rw, http.StatusOK, rooms)
}

func (h *Handler) GetRoom(rw http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	room, ok, err := h.mgr.GetRoom(number)
	if err != nil {
		h.fail(rw, r, "GetRoom", err)
		return
	}
	if !ok {
		h.fail(rw, r, "GetRoom", fmt.Errorf("%w: %s", hotel.ErrRoomNotFound, number))
		return
	}
	respond(rw, http.StatusOK, room)
}

// ------------------ Availability ------------------

// Availability answers for the requested stay and falls back to the
// alternative window when no room is free.
func (h *Handler) Availability(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	checkIn, checkOut, err := parseStay(q.Get("checkIn"), q.Get("checkOut"))
	if err != nil {
		h.fail(rw, r, "Availability", err)
		return
	}

	found, err := h.mgr.Search(checkIn, checkOut)
	if err != nil {
		h.fail(rw, r, "Availability", err)
		return
	}
	respond(rw, http.StatusOK, availabilityResponse{
		CheckIn:     hotel.FormatDate(found.CheckIn),
		CheckOut:    hotel.FormatDate(found.CheckOut),
		Alternative: found.Alternative,
		Rooms:       found.Rooms,
	})
}

// ------------------ Reservations ------------------

// CreateReservation books the room only if it is still free for the stay.
func (h *Handler) CreateReservation(rw http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decode(r, &req); err != nil {
		h.fail(rw, r, "CreateReservation", fmt.Errorf("%w: %v", errBadBody, err))
		return
	}
	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		h.fail(rw, r, "CreateReservation", err)
		return
	}

	reservation, err := h.mgr.BookIfAvailable(req.Email, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		h.fail(rw, r, "CreateReservation", err)
		return
	}
	respond(rw, http.StatusCreated, toReservationResponse(reservation))
}

func (h *Handler) ListReservations(rw http.ResponseWriter, r *http.Request) {
	reservations, err := h.mgr.AllReservations()
	if err != nil {
		h.fail(rw, r, "ListReservations", err)
		return
	}
	respond(rw, http.StatusOK, toReservationResponses(reservations))
}

// ------------------ Errors ------------------

var errBadBody = errors.New("malformed request body")

// fail maps err onto a status and error code, logs it and writes the envelope.
func (h *Handler) fail(rw http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := http.StatusInternalServerError, CodeInternalError
	switch {
	case errors.Is(err, errBadBody),
		errors.Is(err, hotel.ErrInvalidEmail),
		errors.Is(err, hotel.ErrInvalidDate),
		errors.Is(err, hotel.ErrInvalidPrice),
		errors.Is(err, hotel.ErrInvalidRoomType):
		status, code = http.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, hotel.ErrCustomerNotFound),
		errors.Is(err, hotel.ErrRoomNotFound):
		status, code = http.StatusNotFound, CodeNotFound
	case errors.Is(err, hotel.ErrRoomUnavailable):
		status, code = http.StatusConflict, CodeConflict
	}

	log := h.log.With("op", op, "requestID", middleware.GetReqID(r.Context()), "status", status)
	if status == http.StatusInternalServerError {
		log.Errorw("request failed", "error", err.Error())
		respondErr(rw, status, code, errors.New("internal error"))
		return
	}
	log.Warnw("request rejected", "error", err.Error())
	respondErr(rw, status, code, err)
}
