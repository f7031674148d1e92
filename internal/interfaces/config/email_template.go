// Package config
package config

import (
	"errors"
	"html/template"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
)

type EmailTemplateConfig struct {
	EmailVerifyTemplateFile   string             `json:"email_verify_template_file"`
	EmailVerifyTemplate       *template.Template `json:"-"`
	WeeklySummaryTemplateFile string             `json:"weekly_summary_template_file"`
	WeeklySummaryTemplate     *template.Template `json:"-"`
	EnableWeeklySummaryEmail  bool               `json:"enable_weekly_summary_email"`
	SlotBookedTemplateFile    string             `json:"slot_booked_template_file"`
	SlotBookedTemplate        *template.Template `json:"-"`
	EnableSlotBookedEmail     bool               `json:"enable_slot_booked_email"`
}

func defaultEmailTemplateConfig() *EmailTemplateConfig {
	return &EmailTemplateConfig{
		EmailVerifyTemplateFile:   "template/email_verify.template",
		WeeklySummaryTemplateFile: "template/weekly_summary.template",
		EnableWeeklySummaryEmail:  true,
		SlotBookedTemplateFile:    "template/slot_booked.template",
		EnableSlotBookedEmail:     true,
	}
}

const emailVerifyDefaultTemplate = `<html><body>
<p>Hola {{.Name}},</p>
<p>Tu código de verificación es <b>{{.Code}}</b>. Vence en {{.Expired}} minutos.</p>
</body></html>`

const weeklySummaryDefaultTemplate = `<html><body>
<p>Hola {{.Name}},</p>
<p>Resumen de actividad del {{.Start}} al {{.End}}:</p>
<pre>{{.Body}}</pre>
<p>Total motor: {{.EngineTotal}} hs &mdash; Total planeador: {{.GliderTotal}} hs</p>
</body></html>`

const slotBookedDefaultTemplate = `<html><body>
<p>Hola {{.Name}},</p>
<p>Tu turno del {{.Date}} de {{.Start}} a {{.End}} fue {{.Action}}.</p>
</body></html>`

func (config *EmailTemplateConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if bytes, err := cachedContent(logger, config.EmailVerifyTemplateFile, []byte(emailVerifyDefaultTemplate)); err != nil {
		return ValidFailWith(errors.New("fail to load email_verify_template_file"), err)
	} else if parse, err := template.New("email_verify").Parse(string(bytes)); err != nil {
		return ValidFailWith(errors.New("fail to parse email_verify_template"), err)
	} else {
		config.EmailVerifyTemplate = parse
	}

	if config.EnableWeeklySummaryEmail {
		if bytes, err := cachedContent(logger, config.WeeklySummaryTemplateFile, []byte(weeklySummaryDefaultTemplate)); err != nil {
			return ValidFailWith(errors.New("fail to load weekly_summary_template_file"), err)
		} else if parse, err := template.New("weekly_summary").Parse(string(bytes)); err != nil {
			return ValidFailWith(errors.New("fail to parse weekly_summary_template"), err)
		} else {
			config.WeeklySummaryTemplate = parse
		}
	}

	if config.EnableSlotBookedEmail {
		if bytes, err := cachedContent(logger, config.SlotBookedTemplateFile, []byte(slotBookedDefaultTemplate)); err != nil {
			return ValidFailWith(errors.New("fail to load slot_booked_template_file"), err)
		} else if parse, err := template.New("slot_booked").Parse(string(bytes)); err != nil {
			return ValidFailWith(errors.New("fail to parse slot_booked_template"), err)
		} else {
			config.SlotBookedTemplate = parse
		}
	}

	return ValidPass()
}
