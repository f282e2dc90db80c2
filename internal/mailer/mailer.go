// File: internal/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"carhub/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer 寄送註冊歡迎信，測試時以 FakeMailer 取代
type Mailer interface {
	SendWelcome(to, name, password string) error
}

// sendEmail 供測試替換實際的 SMTP 傳送
var sendEmail = func(e *email.Email, addr string, auth smtp.Auth) error {
	return e.Send(addr, auth)
}

// SMTPMailer 透過設定檔中的 SMTP 參數寄信
type SMTPMailer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendWelcome 寄送包含系統產生密碼的歡迎信
// 傳送失敗由呼叫端決定如何回應，這裡不做重試
func (m *SMTPMailer) SendWelcome(to, name, password string) error {
	e := email.NewEmail()
	e.From = m.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to CarHub"

	body := fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome to CarHub, %s!</h2>
    <p>We're excited to have you onboard. Below is your login information:</p>
    <p><strong>Your login password is:</strong><br>
       <span style="font-size: 18px; font-weight: bold;">%s</span></p>
    <footer style="margin-top: 30px; font-size: 14px; color: #888;">
      <p>Thank you for joining us!</p>
      <p>&copy; %d CarHub</p>
    </footer>
  </body>
</html>`, name, password, time.Now().Year())
	e.HTML = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := sendEmail(e, addr, auth); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

type FakeMailer struct {
	SendWelcomeFn func(to, name, password string) error
}

// SendWelcome 執行 Fake 設定或 panic
func (f *FakeMailer) SendWelcome(to, name, password string) error {
	if f.SendWelcomeFn != nil {
		return f.SendWelcomeFn(to, name, password)
	}
	panic("unexpected SendWelcome")
}
