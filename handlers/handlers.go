package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"treqsy/chat"
	"treqsy/models"
	"treqsy/repository"
	"treqsy/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type contextKey string

const identityKey contextKey = "identity"

// sessionBuffer bounds the per-connection outbound chat queue.
const sessionBuffer = 32

type Handler struct {
	svc      service.Service
	tokens   service.TokenManager
	hub      *chat.Hub
	upgrader websocket.Upgrader
}

func NewHandler(svc service.Service, tokens service.TokenManager, hub *chat.Hub) Handler {
	return Handler{
		svc:    svc,
		tokens: tokens,
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type GiftRequest struct {
	ToUserID int `json:"to_user_id"`
	Amount   int `json:"amount"`
}

type AmountRequest struct {
	Amount int `json:"amount"`
}

type ApprovePayoutRequest struct {
	RequestID int `json:"request_id"`
}

type StartStreamRequest struct {
	Title string `json:"title"`
}

type AppNameRequest struct {
	AppName string `json:"app_name"`
}

type CoinAnalyticsResponse struct {
	TotalCoins     int `json:"total_coins"`
	CoinsPurchased int `json:"coins_purchased"`
	CoinsSpent     int `json:"coins_spent"`
	CoinsPaidOut   int `json:"coins_paid_out"`
}

type ErrorResponse struct {
	Errors string `json:"errors"`
}

// UserResponse is the outward shape of a user record; the password hash
// never leaves the server.
type UserResponse struct {
	ID       int         `json:"id"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	IsActive bool        `json:"is_active"`
	IsVIP    bool        `json:"is_vip"`
	Coins    int         `json:"coins"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
		IsVIP:    u.IsVIP,
		Coins:    u.Coins,
	}
}

func (h Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	role := models.RoleUser
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		role = parsed
	}
	user, err := h.svc.Register(r.Context(), req.Email, req.Password, role)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h Handler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	user, err := h.svc.Profile(r.Context(), identity.UserID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toUserResponse(user))
}

func (h Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h Handler) SetRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SetRole(r.Context(), userID, role); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) SetActiveHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SetActive(r.Context(), userID, req.Active); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) SetVIPHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		VIP bool `json:"vip"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SetVIP(r.Context(), userID, req.VIP); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Purchase(r.Context(), identity.UserID, req.Amount); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) GiftHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	var req GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Gift(r.Context(), identity.UserID, req.ToUserID, req.Amount); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	txs, err := h.svc.Transactions(r.Context(), identity.UserID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, txs)
}

func (h Handler) RequestPayoutHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payout, err := h.svc.RequestPayout(r.Context(), identity.UserID, req.Amount)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, payout)
}

func (h Handler) PendingPayoutsHandler(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.svc.PendingPayouts(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, payouts)
}

func (h Handler) ApprovePayoutHandler(w http.ResponseWriter, r *http.Request) {
	var req ApprovePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payout, err := h.svc.ApprovePayout(r.Context(), req.RequestID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, payout)
}

func (h Handler) AppNameHandler(w http.ResponseWriter, r *http.Request) {
	name, err := h.svc.AppName(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, AppNameRequest{AppName: name})
}

func (h Handler) SetAppNameHandler(w http.ResponseWriter, r *http.Request) {
	var req AppNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AppName == "" {
		respondWithError(w, http.StatusBadRequest, "app name is required")
		return
	}
	if err := h.svc.SetAppName(r.Context(), req.AppName); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) CoinSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.CoinSettings(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

func (h Handler) SetCoinSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings service.CoinSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SetCoinSettings(r.Context(), settings); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) CoinAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.CoinAnalytics(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CoinAnalyticsResponse{
		TotalCoins:     analytics.TotalCoins,
		CoinsPurchased: analytics.CoinsPurchased,
		CoinsSpent:     analytics.CoinsSpent,
		CoinsPaidOut:   analytics.CoinsPaidOut,
	})
}

func (h Handler) StartStreamHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity missing from context")
		return
	}
	var req StartStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := h.svc.StartStream(r.Context(), identity.UserID, req.Title)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

func (h Handler) EndStreamHandler(w http.ResponseWriter, r *http.Request) {
	streamID, exists := mux.Vars(r)["id"]
	if !exists {
		respondWithError(w, http.StatusBadRequest, "stream id not specified")
		return
	}
	session, err := h.svc.EndStream(r.Context(), streamID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

func (h Handler) ActiveStreamsHandler(w http.ResponseWriter, r *http.Request) {
	streams, err := h.svc.ActiveStreams(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, streams)
}

// ChatHandler upgrades the connection and relays room messages until the
// client disconnects.
func (h Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	room, exists := mux.Vars(r)["stream_id"]
	if !exists {
		respondWithError(w, http.StatusBadRequest, "stream id not specified")
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	session := chat.NewSession(sessionBuffer)
	h.hub.Join(room, session)

	go func() {
		defer conn.Close()
		for {
			select {
			case msg, ok := <-session.Messages():
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-session.Closed():
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		h.hub.Broadcast(room, msg)
	}
	h.hub.Leave(room, session)
	session.Close()
	h.hub.Broadcast(room, []byte("a viewer left the chat"))
}

// JWTMiddleware verifies the bearer access token and stores the verified
// identity in the request context.
func (h Handler) JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "authorization token missing")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			respondWithError(w, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		identity, err := h.tokens.Verify(authHeader[len(bearerPrefix):], service.TokenAccess)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// RequireRoles authorizes the request identity against the required set.
// It composes after JWTMiddleware and short-circuits before any mutation.
func (h Handler) RequireRoles(next http.HandlerFunc, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromContext(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "identity missing from context")
			return
		}
		if _, err := service.Authorize(identity, roles...); err != nil {
			respondWithError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r)
	}
}

func identityFromContext(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(service.Identity)
	return identity, ok
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw, exists := mux.Vars(r)["id"]
	if !exists {
		respondWithError(w, http.StatusBadRequest, "user id not specified")
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "user id must be numeric")
		return 0, false
	}
	return id, true
}

// respondWithServiceError maps domain failures to stable status codes.
// Unknown errors collapse to a generic 500 so storage details never leak.
func (h Handler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInactiveUser):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrAlreadyProcessed):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrInsufficientBalance),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrSelfGift):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Errors: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("response encoding error: %v", err)
	}
}
