// Package httpgin is the HTML surface of tix-web: a gin router whose
// handlers fetch from the booking API and render server-side templates.
//
// Every page is rebuilt from a fresh fetch; after a mutation the handler
// redirects, and the follow-up GET performs the re-fetch. Nothing is patched
// locally.
package httpgin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/tix-web/internal/api"
	"github.com/kirinyoku/tix-web/internal/service"
	"github.com/kirinyoku/tix-web/internal/service/admin"
	"github.com/kirinyoku/tix-web/internal/service/ledger"
	"github.com/kirinyoku/tix-web/internal/view"
)

const adminCookie = "admin_mode"

// Fixed user-facing failure strings. Fetch failures always show these;
// the underlying cause goes to the log only.
const (
	msgEventsFailed   = "Failed to load events"
	msgBookingsFailed = "Failed to load bookings"
	msgBookingFailed  = "Failed to create booking"
	msgEventFailed    = "Failed to create event. Please try again."
	msgUpdateFailed   = "Failed to update event. Please try again."
	msgFormInvalid    = "Please fill in every field; the email must be valid."
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	r.SetHTMLTemplate(loadTemplates())
	r.StaticFS("/static", staticRoot())

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", handleCatalog(svcs, logger))
	r.POST("/bookings", handleCreateBooking(svcs, logger))

	r.GET("/bookings", handleLedger(svcs, logger))
	r.POST("/bookings/:id/cancel", handleCancelBooking(svcs, logger))

	r.GET("/admin", handleEventForm())
	r.POST("/events", handleCreateEvent(svcs, logger))
	r.GET("/events/:id/edit", handleEditEvent(svcs, logger))
	r.POST("/events/:id", handleUpdateEvent(svcs, logger))
	r.POST("/events/:id/delete", handleDeleteEvent(svcs, logger))

	r.GET("/mode", handleMode())

	return r
}

// handleCatalog renders the event catalog, optionally with the booking
// modal open (?book=<id>).
func handleCatalog(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := view.Catalog{
			Admin:        isAdminMode(c),
			UpcomingOnly: c.Query("upcoming") == "1",
			Booked:       c.Query("booked") == "1",
			Flash:        catalogFlash(c.Query("err")),
		}

		events, err := svcs.Catalog.Events(c.Request.Context(), page.UpcomingOnly)
		if err != nil {
			logger.Error("fetch events", "error", err)
			page.Status = view.StatusFailed
			page.Message = msgEventsFailed
			c.HTML(http.StatusBadGateway, "catalog", page)
			return
		}

		page.Status = view.StatusReady
		page.Cards = view.NewEventCards(events)

		if id, ok := parseInt64Query(c, "book"); ok && !page.Admin {
			for _, card := range page.Cards {
				if card.Event.ID == id && !card.Event.SoldOut() {
					page.Modal = &view.BookingForm{Card: card}
					break
				}
			}
		}

		c.HTML(http.StatusOK, "catalog", page)
	}
}

// handleCreateBooking submits the booking modal. On success it redirects,
// so the next catalog render re-fetches; on failure it re-renders the
// catalog with the modal still open and the server's message inline.
func handleCreateBooking(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingFormRequest
		if err := c.ShouldBind(&req); err != nil {
			renderBookingRetry(c, svcs, logger, req, msgFormInvalid, http.StatusBadRequest)
			return
		}

		_, err := svcs.Booking.Book(c.Request.Context(), req.EventID, req.UserName, req.Email)
		if err != nil {
			logger.Error("create booking", "event_id", req.EventID, "error", err)
			renderBookingRetry(c, svcs, logger, req, api.ServerMessage(err, msgBookingFailed), http.StatusOK)
			return
		}

		c.Redirect(http.StatusSeeOther, "/?booked=1")
	}
}

// renderBookingRetry rebuilds the catalog page with the modal open, the
// submitted values preserved and msg shown inline. The page's top-level
// state stays Ready; only the form is in error.
func renderBookingRetry(
	c *gin.Context,
	svcs *service.Services,
	logger *slog.Logger,
	req BookingFormRequest,
	msg string,
	status int,
) {
	page := view.Catalog{}

	events, err := svcs.Catalog.Events(c.Request.Context(), false)
	if err != nil {
		logger.Error("fetch events", "error", err)
		page.Status = view.StatusFailed
		page.Message = msgEventsFailed
		c.HTML(http.StatusBadGateway, "catalog", page)
		return
	}

	page.Status = view.StatusReady
	page.Cards = view.NewEventCards(events)

	for _, card := range page.Cards {
		if card.Event.ID == req.EventID {
			page.Modal = &view.BookingForm{
				Card:     card,
				UserName: req.UserName,
				Email:    req.Email,
				Error:    msg,
			}
			break
		}
	}

	if page.Modal == nil {
		// The event vanished between render and submit; nothing to retry.
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(status, "catalog", page)
}

// handleDeleteEvent is the admin delete action. The confirm() prompt runs
// client-side; here we delete and redirect so the catalog re-fetches.
func handleDeleteEvent(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminMode(c) {
			c.String(http.StatusForbidden, "admin mode required")
			return
		}

		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Catalog.DeleteEvent(c.Request.Context(), id); err != nil {
			logger.Error("delete event", "event_id", id, "error", err)
			c.Redirect(http.StatusSeeOther, "/?err=delete")
			return
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

// handleLedger renders the bookings table: concurrent dual fetch, join,
// all-or-nothing.
func handleLedger(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := view.Ledger{
			FilterEmail: c.Query("user"),
			Flash:       ledgerFlash(c.Query("err")),
		}

		filter := serviceFilter(c)
		snap, err := svcs.Ledger.Fetch(c.Request.Context(), filter)
		if err != nil {
			logger.Error("fetch bookings", "error", err)
			page.Status = view.StatusFailed
			page.Message = msgBookingsFailed
			c.HTML(http.StatusBadGateway, "bookings", page)
			return
		}

		page.Status = view.StatusReady
		page.Rows = view.NewLedgerRows(snap.Bookings, snap.Events)

		c.HTML(http.StatusOK, "bookings", page)
	}
}

// handleCancelBooking deletes one booking and redirects; the follow-up GET
// re-fetches both lists.
func handleCancelBooking(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Booking.Cancel(c.Request.Context(), id); err != nil {
			logger.Error("cancel booking", "booking_id", id, "error", err)
			c.Redirect(http.StatusSeeOther, "/bookings?err=cancel")
			return
		}

		c.Redirect(http.StatusSeeOther, "/bookings")
	}
}

// handleEventForm renders the empty admin create form.
func handleEventForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminMode(c) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		page := view.EventEditor{
			Created: c.Query("created") == "1",
		}
		c.HTML(http.StatusOK, "event_form", page)
	}
}

// handleCreateEvent submits the admin create form. New events start with
// every seat available.
func handleCreateEvent(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminMode(c) {
			c.String(http.StatusForbidden, "admin mode required")
			return
		}

		var req EventFormRequest
		draft, errMsg := bindEventDraft(c, &req)
		if errMsg != "" {
			c.HTML(http.StatusBadRequest, "event_form", editorFromRequest(req, 0, false, errMsg))
			return
		}

		if _, err := svcs.Admin.CreateEvent(c.Request.Context(), draft); err != nil {
			logger.Error("create event", "error", err)
			msg := api.ServerMessage(err, msgEventFailed)
			c.HTML(http.StatusOK, "event_form", editorFromRequest(req, 0, false, msg))
			return
		}

		c.Redirect(http.StatusSeeOther, "/admin?created=1")
	}
}

// handleEditEvent renders the edit form pre-filled with the server's copy.
func handleEditEvent(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminMode(c) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		e, err := svcs.Admin.Event(c.Request.Context(), id)
		if err != nil {
			logger.Error("fetch event", "event_id", id, "error", err)
			c.Redirect(http.StatusSeeOther, "/?err=load")
			return
		}

		page := view.EventEditor{
			Editing:  true,
			EventID:  e.ID,
			Title:    e.Title,
			DateTime: e.Date.Format(datetimeLocal),
			Location: e.Location,
			Seats:    e.Seats,
		}
		c.HTML(http.StatusOK, "event_form", page)
	}
}

// handleUpdateEvent submits the edit form.
func handleUpdateEvent(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminMode(c) {
			c.String(http.StatusForbidden, "admin mode required")
			return
		}

		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req EventFormRequest
		draft, errMsg := bindEventDraft(c, &req)
		if errMsg != "" {
			c.HTML(http.StatusBadRequest, "event_form", editorFromRequest(req, id, true, errMsg))
			return
		}

		if _, err := svcs.Admin.UpdateEvent(c.Request.Context(), id, draft); err != nil {
			logger.Error("update event", "event_id", id, "error", err)
			msg := api.ServerMessage(err, msgUpdateFailed)
			c.HTML(http.StatusOK, "event_form", editorFromRequest(req, id, true, msg))
			return
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

// handleMode flips the admin display mode cookie. A display mode, not auth.
func handleMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("admin") == "1" {
			c.SetCookie(adminCookie, "1", 0, "/", "", false, true)
		} else {
			c.SetCookie(adminCookie, "", -1, "/", "", false, true)
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

// --- Helpers ---

func isAdminMode(c *gin.Context) bool {
	v, err := c.Cookie(adminCookie)
	return err == nil && v == "1"
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseInt64Query(c *gin.Context, name string) (int64, bool) {
	s := c.Query(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func serviceFilter(c *gin.Context) ledger.Filter {
	f := ledger.Filter{Email: c.Query("user")}
	if id, ok := parseInt64Query(c, "event"); ok {
		f.EventID = id
	}
	return f
}

// catalogFlash maps error codes carried across a redirect to their fixed
// banner text. Free-form text never travels in the query string.
func catalogFlash(code string) string {
	switch code {
	case "delete":
		return "Failed to delete event"
	case "load":
		return "Failed to load event"
	default:
		return ""
	}
}

func ledgerFlash(code string) string {
	if code == "cancel" {
		return "Failed to cancel booking"
	}
	return ""
}

func bindEventDraft(c *gin.Context, req *EventFormRequest) (d admin.EventDraft, errMsg string) {
	if err := c.ShouldBind(req); err != nil {
		return d, msgFormInvalid
	}

	date, err := req.ParseDate()
	if err != nil {
		return d, "Please provide a valid date and time."
	}

	d.Title = req.Title
	d.Date = date
	d.Location = req.Location
	d.Seats = req.Seats
	return d, ""
}

func editorFromRequest(req EventFormRequest, id int64, editing bool, errMsg string) view.EventEditor {
	return view.EventEditor{
		Editing:  editing,
		EventID:  id,
		Title:    req.Title,
		DateTime: req.Date,
		Location: req.Location,
		Seats:    req.Seats,
		Error:    errMsg,
	}
}
