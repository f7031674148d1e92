// Package service
package service

import (
	"errors"
	"fmt"
	"html/template"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"github.com/aeroclub-dev/clubhouse/internal/report"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"gopkg.in/gomail.v2"
)

var (
	emailService *EmailService
	once         sync.Once
)

type EmailService struct {
	logger       log.LoggerInterface
	clubName     string
	emailCodes   map[string]EmailCode
	lastSendTime map[string]time.Time
	config       *config.EmailConfig
	mu           sync.Mutex
}

type EmailCode struct {
	code     int
	sendTime time.Time
}

type EmailVerifyTemplateData struct {
	Name    string
	Code    string
	Expired string
}

type WeeklySummaryTemplateData struct {
	Name        string
	Start       string
	End         string
	Body        string
	EngineTotal string
	GliderTotal string
}

type SlotBookedTemplateData struct {
	Name   string
	Date   string
	Start  string
	End    string
	Action string
}

func NewEmailService(logger log.LoggerInterface, clubName string, config *config.EmailConfig) *EmailService {
	once.Do(func() {
		emailService = &EmailService{
			logger:       logger,
			clubName:     clubName,
			config:       config,
			emailCodes:   make(map[string]EmailCode),
			lastSendTime: make(map[string]time.Time),
		}
	})
	return emailService
}

var (
	ErrEmailSendInterval      = errors.New("email send interval")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
	ErrEmailCodeNotFound      = errors.New("email code not found")
	ErrEmailCodeExpired       = errors.New("email code expired")
	ErrInvalidEmailCode       = errors.New("invalid email code")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (emailService *EmailService) VerifyCode(email string, code int) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	email = strings.ToLower(email)
	emailService.mu.Lock()
	defer emailService.mu.Unlock()
	emailCode, ok := emailService.emailCodes[email]
	if !ok {
		return ErrEmailCodeNotFound
	}

	if time.Since(emailCode.sendTime) > emailService.config.VerifyExpiredDuration {
		return ErrEmailCodeExpired
	}

	if emailCode.code != code {
		return ErrInvalidEmailCode
	}

	delete(emailService.emailCodes, email)
	return nil
}

func (emailService *EmailService) SendEmailCode(email string) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	email = strings.ToLower(email)
	emailService.mu.Lock()
	if lastSendTime, ok := emailService.lastSendTime[email]; ok {
		if time.Since(lastSendTime) < emailService.config.SendDuration {
			emailService.mu.Unlock()
			return ErrEmailSendInterval
		}
	}
	code := rand.Intn(9e5) + 1e5
	emailService.emailCodes[email] = EmailCode{code: code, sendTime: time.Now()}
	emailService.lastSendTime[email] = time.Now()
	emailService.mu.Unlock()

	data := &EmailVerifyTemplateData{
		Name:    email,
		Code:    strconv.Itoa(code),
		Expired: fmt.Sprintf("%.0f", emailService.config.VerifyExpiredDuration.Minutes()),
	}
	content, err := emailService.RenderTemplate(emailService.config.Template.EmailVerifyTemplate, data)
	if err != nil {
		return err
	}
	return emailService.sendEmail(email, fmt.Sprintf("%s - Código de verificación", emailService.clubName), content)
}

var (
	ErrSendInterval  = ApiStatus{StatusName: "EMAIL_SEND_INTERVAL", Description: "Verification code already sent, wait before retrying", HttpCode: BadRequest}
	ErrEmailSendFail = ApiStatus{StatusName: "EMAIL_SEND_FAIL", Description: "Sending the verification email failed", HttpCode: ServerInternalError}
	SuccessSendEmail = ApiStatus{StatusName: "EMAIL_SENT", Description: "Verification email sent", HttpCode: Ok}
)

func (emailService *EmailService) SendEmailVerifyCode(req *RequestEmailVerifyCode) *ApiResponse[ResponseEmailVerifyCode] {
	if req.Email == "" {
		return NewApiResponse[ResponseEmailVerifyCode](&ErrIllegalParam, Unsatisfied, nil)
	}
	if err := emailService.SendEmailCode(req.Email); err != nil {
		if errors.Is(err, ErrEmailSendInterval) {
			return NewApiResponse[ResponseEmailVerifyCode](&ErrSendInterval, Unsatisfied, nil)
		}
		emailService.logger.ErrorF("EmailService.SendEmailVerifyCode send error: %v", err)
		return NewApiResponse[ResponseEmailVerifyCode](&ErrEmailSendFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessSendEmail, Unsatisfied, &ResponseEmailVerifyCode{Email: req.Email})
}

func (emailService *EmailService) SendWeeklySummaryEmail(pilot *operation.Pilot, summary *WeeklySummaryData) error {
	if !emailService.config.Template.EnableWeeklySummaryEmail {
		return nil
	}
	body := fmt.Sprintf("Vuelos registrados en el club: %d\nTus vuelos: %d (motor %s, planeador %s)",
		summary.FlightCount,
		summary.OwnCount,
		report.FormatHours(summary.OwnTotals.Engine),
		report.FormatHours(summary.OwnTotals.Glider))
	data := &WeeklySummaryTemplateData{
		Name:        pilot.DisplayName(),
		Start:       summary.WeekStart,
		End:         summary.WeekEnd,
		Body:        body,
		EngineTotal: fmt.Sprintf("%.1f", summary.Totals.Engine),
		GliderTotal: fmt.Sprintf("%.1f", summary.Totals.Glider),
	}
	content, err := emailService.RenderTemplate(emailService.config.Template.WeeklySummaryTemplate, data)
	if err != nil {
		return err
	}
	return emailService.sendEmail(pilot.Email, fmt.Sprintf("%s - Resumen semanal", emailService.clubName), content)
}

func (emailService *EmailService) SendSlotBookedEmail(pilot *operation.Pilot, slot *operation.AgendaSlot) error {
	if !emailService.config.Template.EnableSlotBookedEmail {
		return nil
	}
	data := &SlotBookedTemplateData{
		Name:   pilot.DisplayName(),
		Date:   slot.SlotDate.Format("02/01/2006"),
		Start:  slot.StartTime,
		End:    slot.EndTime,
		Action: "reservado",
	}
	content, err := emailService.RenderTemplate(emailService.config.Template.SlotBookedTemplate, data)
	if err != nil {
		return err
	}
	return emailService.sendEmail(pilot.Email, fmt.Sprintf("%s - Turno reservado", emailService.clubName), content)
}

func (emailService *EmailService) sendEmail(to, subject, htmlBody string) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	message := gomail.NewMessage()
	message.SetHeader("From", emailService.config.Username)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)
	return emailService.config.EmailServer.DialAndSend(message)
}
