// Package server exposes the mortgage affordability engine over a JSON HTTP
// API.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/truenorth-fi/mortgage-affordability/internal/cache"
	"github.com/truenorth-fi/mortgage-affordability/internal/config"
	"github.com/truenorth-fi/mortgage-affordability/pkg/mortgage"
	"go.uber.org/zap"
)

// Options configures the HTTP handler.
type Options struct {
	MaxRequestSize int64
	Version        string
	Cache          cache.Cache
	RateLimiter    *RateLimiter
}

type handler struct {
	logger         *zap.Logger
	engine         *mortgage.Engine
	resultCache    cache.Cache
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, engine *mortgage.Engine, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		engine:         engine,
		resultCache:    opts.Cache,
		maxRequestSize: opts.MaxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculation API endpoint
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Jurisdiction metadata for UI selectors
	mux.HandleFunc("/api/provinces", h.handleProvinces)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	if opts.RateLimiter != nil {
		return RateLimitMiddleware(opts.RateLimiter, mux)
	}
	return mux
}

type calculateRequest struct {
	Inputs *mortgage.Inputs `json:"inputs"`
}

type calculateResponse struct {
	Inputs   mortgage.Inputs `json:"inputs"`
	Result   mortgage.Result `json:"result"`
	Warnings []string        `json:"warnings,omitempty"`
	Duration string          `json:"duration"`
	Cached   bool            `json:"cached"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleCalculate")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), "server.handleCalculate")
		return
	}

	inputs, err := decodeInputs(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode inputs: %v", err), "server.handleCalculate")
		return
	}

	warnings := config.SanitizeInputs(&inputs)

	key, err := inputDigest(inputs)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to digest inputs: %v", err), "server.handleCalculate")
		return
	}

	var result mortgage.Result
	cached := false
	if h.resultCache != nil {
		if serialized, ok := h.resultCache.Get(r.Context(), key); ok {
			if err := json.Unmarshal([]byte(serialized), &result); err == nil {
				cached = true
			} else {
				h.logger.Warn("failed to decode cached result; recomputing",
					zap.String("op", "server.handleCalculate"),
					zap.Error(err),
				)
			}
		}
	}

	if !cached {
		result = h.engine.Calculate(inputs)
		if h.resultCache != nil {
			if serialized, err := json.Marshal(result); err == nil {
				if err := h.resultCache.Set(r.Context(), key, string(serialized)); err != nil {
					h.logger.Warn("failed to cache result",
						zap.String("op", "server.handleCalculate"),
						zap.Error(err),
					)
				}
			}
		}
	}

	elapsed := time.Since(start)
	h.logger.Info("calculation served",
		zap.String("op", "server.handleCalculate"),
		zap.String("province", string(inputs.Jurisdiction.Province)),
		zap.Bool("cached", cached),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Inputs:   inputs,
		Result:   result,
		Warnings: warnings,
		Duration: elapsed.String(),
		Cached:   cached,
	})
}

// decodeInputs accepts either {"inputs": {...}} or a bare inputs object.
func decodeInputs(body []byte) (mortgage.Inputs, error) {
	var envelope calculateRequest
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Inputs != nil {
		return *envelope.Inputs, nil
	}

	var inputs mortgage.Inputs
	if err := json.Unmarshal(body, &inputs); err != nil {
		return mortgage.Inputs{}, err
	}
	return inputs, nil
}

// inputDigest produces the memoization key for a sanitized input record.
func inputDigest(inputs mortgage.Inputs) (string, error) {
	serialized, err := json.Marshal(inputs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:]), nil
}

type provinceInfo struct {
	Code                  string   `json:"code"`
	Municipalities        []string `json:"municipalities,omitempty"`
	ForeignBuyerRate      float64  `json:"foreignBuyerRate"`
	InsuranceSalesTaxRate float64  `json:"insuranceSalesTaxRate"`
	FirstTimeBuyerRelief  bool     `json:"firstTimeBuyerRelief"`
}

func (h *handler) handleProvinces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	table := h.engine.Taxes().Table()

	municipalitiesByProvince := make(map[string][]string)
	for key, rule := range table.Municipalities {
		code := string(rule.Province)
		municipalitiesByProvince[code] = append(municipalitiesByProvince[code], key)
	}

	provinces := make([]provinceInfo, 0, len(table.Provinces))
	for code, rule := range table.Provinces {
		municipalities := municipalitiesByProvince[string(code)]
		sort.Strings(municipalities)
		provinces = append(provinces, provinceInfo{
			Code:                  string(code),
			Municipalities:        municipalities,
			ForeignBuyerRate:      rule.ForeignBuyerRate,
			InsuranceSalesTaxRate: rule.InsuranceSalesTaxRate,
			FirstTimeBuyerRelief:  rule.FirstTimeRebateCap > 0 || rule.FirstTimeExemptionLimit > 0,
		})
	}
	sort.Slice(provinces, func(i, j int) bool { return provinces[i].Code < provinces[j].Code })

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"provinces":   provinces,
		"defaultRate": table.DefaultRate,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
