package controllers

import (
	"io"
	"net/http"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/services"
	"time"

	"github.com/shopspring/decimal"
)

const maxMaterialSize = 10 << 20 // 10 MB

// CommandController handles every state-changing POST. Ledger mutations are
// counted per operation and outcome.
type CommandController struct {
	logger  providers.Logger
	service services.AccountServiceInterface
	metrics providers.MetricsProviderInterface
}

func NewCommandController(logger providers.Logger, service services.AccountServiceInterface, metrics providers.MetricsProviderInterface) *CommandController {
	return &CommandController{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type amountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type endSessionRequest struct {
	Transcript        string `json:"transcript"`
	DurationInSeconds int    `json:"durationInSeconds"`
	AudioURL          string `json:"audioRecordingUrl"`
}

type idRequest struct {
	ID string `json:"id"`
}

type reminderRequest struct {
	Title    string    `json:"title"`
	DateTime time.Time `json:"dateTime"`
}

type quoteRequest struct {
	ItemID string `json:"itemId"`
}

type p2pRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination"`
}

func (cc *CommandController) ledgerOp(op string, err error) {
	cc.metrics.IncLedgerOps(op, err == nil)
}

// respond writes v with status on success, the error envelope otherwise.
func (cc *CommandController) respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	writeJSON(w, status, v)
}

func (cc *CommandController) Connect(w http.ResponseWriter, r *http.Request) {
	_, err := cc.service.Connect()
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) Disconnect(w http.ResponseWriter, r *http.Request) {
	cc.service.Disconnect()
	writeJSON(w, http.StatusOK, cc.service.Overview())
}

func (cc *CommandController) CreateProfileName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	_, err := cc.service.CreateProfileName(req.Name)
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) CloseOnboarding(w http.ResponseWriter, r *http.Request) {
	err := cc.service.CloseOnboarding()
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileDetails
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	_, err := cc.service.UpdateProfile(req)
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) UpgradeSubscription(w http.ResponseWriter, r *http.Request) {
	_, err := cc.service.UpgradeSubscription()
	cc.ledgerOp("upgrade", err)
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) Stake(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	position, err := cc.service.Stake(req.Amount)
	cc.ledgerOp("stake", err)
	cc.respond(w, r, http.StatusOK, position, err)
}

func (cc *CommandController) Unstake(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	position, err := cc.service.Unstake(req.Amount)
	cc.ledgerOp("unstake", err)
	cc.respond(w, r, http.StatusOK, position, err)
}

func (cc *CommandController) ClaimStakingRewards(w http.ResponseWriter, r *http.Request) {
	amount, err := cc.service.ClaimStakingRewards()
	cc.ledgerOp("claim_rewards", err)
	cc.respond(w, r, http.StatusOK, amountResponse{Amount: amount}, err)
}

func (cc *CommandController) MintOfficialCredential(w http.ResponseWriter, r *http.Request) {
	credential, err := cc.service.MintOfficialCredential()
	cc.ledgerOp("mint_official", err)
	cc.respond(w, r, http.StatusCreated, credential, err)
}

// PrepareMaterial takes the raw file as the request body and its name from
// the "name" query parameter.
func (cc *CommandController) PrepareMaterial(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMaterialSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, cc.logger, errBadRequest)
		return
	}
	material, err := cc.service.PrepareMaterial(r.Context(), r.URL.Query().Get("name"), data)
	cc.respond(w, r, http.StatusOK, material, err)
}

func (cc *CommandController) StartSession(w http.ResponseWriter, r *http.Request) {
	var req services.SessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	err := cc.service.StartSession(req)
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) EndSession(w http.ResponseWriter, r *http.Request) {
	var req endSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	session, err := cc.service.EndSession(req.Transcript, req.DurationInSeconds, req.AudioURL)
	cc.respond(w, r, http.StatusCreated, session, err)
}

func (cc *CommandController) RequestSummary(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	if err := cc.service.RequestSummary(req.ID); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (cc *CommandController) ClaimSessionReward(w http.ResponseWriter, r *http.Request) {
	amount, err := cc.service.ClaimSessionReward()
	cc.ledgerOp("session_reward", err)
	cc.respond(w, r, http.StatusOK, amountResponse{Amount: amount}, err)
}

func (cc *CommandController) MintSessionCredential(w http.ResponseWriter, r *http.Request) {
	credential, err := cc.service.MintSessionCredential()
	cc.ledgerOp("mint_session", err)
	cc.respond(w, r, http.StatusCreated, credential, err)
}

func (cc *CommandController) ClaimModuleBonus(w http.ResponseWriter, r *http.Request) {
	amount, err := cc.service.ClaimModuleBonus()
	cc.ledgerOp("module_bonus", err)
	cc.respond(w, r, http.StatusOK, amountResponse{Amount: amount}, err)
}

func (cc *CommandController) AddReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	reminder, err := cc.service.AddReminder(req.Title, req.DateTime)
	cc.respond(w, r, http.StatusCreated, reminder, err)
}

func (cc *CommandController) RequestPurchase(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	quote, err := cc.service.RequestPurchase(req.ItemID)
	cc.respond(w, r, http.StatusOK, quote, err)
}

func (cc *CommandController) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	var quote models.PurchaseQuote
	if err := decodeBody(w, r, &quote); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	_, err := cc.service.ConfirmPurchase(quote)
	cc.ledgerOp("purchase", err)
	cc.respond(w, r, http.StatusOK, cc.service.Overview(), err)
}

func (cc *CommandController) ConvertP2P(w http.ResponseWriter, r *http.Request) {
	var req p2pRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	receipt, err := cc.service.ConvertP2P(req.Amount, req.Destination)
	cc.ledgerOp("p2p_convert", err)
	cc.respond(w, r, http.StatusOK, receipt, err)
}
