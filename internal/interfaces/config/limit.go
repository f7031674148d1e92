// Package config
package config

import (
	"errors"
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	NameLengthMin     int           `json:"name_length_min"`
	NameLengthMax     int           `json:"name_length_max"`
	EmailLengthMin    int           `json:"email_length_min"`
	EmailLengthMax    int           `json:"email_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	// ReportRangeMaxDays bounds a single report request. One year of club
	// activity is a few thousand rows at most, so this is generous.
	ReportRangeMaxDays int `json:"report_range_max_days"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:          15,
		RateLimitWindow:    "1m",
		NameLengthMin:      2,
		NameLengthMax:      64,
		EmailLengthMin:     4,
		EmailLengthMax:     128,
		PasswordLengthMin:  6,
		PasswordLengthMax:  64,
		ReportRangeMaxDays: 732,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.NameLengthMin <= 0 || config.NameLengthMin > 64 {
		return ValidFail(errors.New("invalid json field http_server.limits.name_length_min, value must between 1 and 64"))
	}
	if config.NameLengthMax <= 0 || config.NameLengthMax > 64 {
		return ValidFail(errors.New("invalid json field http_server.limits.name_length_max, value must between 1 and 64"))
	}
	if config.NameLengthMin >= config.NameLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.name_length_min, value must less than http_server.limits.name_length_max"))
	}

	if config.EmailLengthMin <= 0 || config.EmailLengthMin > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.email_length_min, value must between 1 and 128"))
	}
	if config.EmailLengthMax <= 0 || config.EmailLengthMax > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.email_length_max, value must between 1 and 128"))
	}
	if config.EmailLengthMin >= config.EmailLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.email_length_min, value must less than http_server.limits.email_length_max"))
	}

	if config.PasswordLengthMin <= 0 || config.PasswordLengthMin > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must between 1 and 128"))
	}
	if config.PasswordLengthMax <= 0 || config.PasswordLengthMax > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_max, value must between 1 and 128"))
	}
	if config.PasswordLengthMin >= config.PasswordLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must less than http_server.limits.password_length_max"))
	}

	if config.ReportRangeMaxDays <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.report_range_max_days, value must larger than 0"))
	}

	return ValidPass()
}
