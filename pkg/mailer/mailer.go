// Package mailer delivers outreach and notification emails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wneessen/go-mail"

	"wcagrep/pkg/serrors"
)

// Attachment is a file attached to a Message.
type Attachment struct {
	Name string
	Data []byte
}

// Message is a single email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	// HTML is sent as an alternative part when set.
	HTML        string
	Attachments []Attachment
	// UnsubscribeURL is advertised in the List-Unsubscribe header.
	UnsubscribeURL string
}

// Sender sends emails.
//
//go:generate mockgen -package mockmailer -destination=mock/mockmailer.go wcagrep/pkg/mailer Sender
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Options configures an SMTP sender.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	From     string
	Timeout  time.Duration
}

// SMTP sends mail through one SMTP relay.
type SMTP struct {
	opts Options

	// mu serializes deliveries on the shared client.
	mu     sync.Mutex
	client *mail.Client
}

var _ Sender = (*SMTP)(nil)

// New creates an SMTP sender. It does not connect until the first Send.
func New(opts Options) (*SMTP, error) {
	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, mail.WithTimeout(opts.Timeout))
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return &SMTP{opts: opts, client: client}, nil
}

// Send delivers msg. Invalid addresses are BAD_REQUEST and delivery failures
// are UNAVAILABLE.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m, err := Build(s.opts.FromName, s.opts.From, msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not deliver email")
	}

	return nil
}

// Build converts msg into a go-mail message.
func Build(fromName, from string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(fromName, from); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid sender address")
	}
	if msg.ToName != "" {
		if err := m.AddToFormat(msg.ToName, msg.To); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipient address")
		}
	} else if err := m.To(msg.To); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipient address")
	}

	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	if msg.UnsubscribeURL != "" {
		m.SetGenHeader(mail.HeaderListUnsubscribe, "<"+msg.UnsubscribeURL+">")
	}

	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	for _, a := range msg.Attachments {
		if err := m.AttachReader(a.Name, bytes.NewReader(a.Data)); err != nil {
			return nil, fmt.Errorf("could not attach %s: %w", a.Name, err)
		}
	}

	return m, nil
}
