// Package google implements the calendar provider on top of the Google Calendar v3 API
package google

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	goauth "golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"commlog/internal/core/event"
	"commlog/internal/platform/config"
	"commlog/internal/platform/logger"
	"commlog/internal/platform/metrics"
	"commlog/internal/services/api/events/domain"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRPS     = 5
	defaultBurst   = 10
)

// Metric operation labels
const (
	opEvents    = "events.list"
	opCalendars = "calendarList.list"
)

// Options configures the Client
type Options struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AccessToken  string
	RefreshToken string
	// TokenExpiry of the access token; zero with a refresh token means refresh on first use
	TokenExpiry time.Time

	Timeout time.Duration
	// RPS <= 0 disables outbound limiting
	RPS   float64
	Burst int

	// Endpoint and HTTPClient override the Google defaults, HTTPClient skips oauth entirely
	Endpoint   string
	HTTPClient *http.Client
}

// OptionsFromConfig reads GOOGLE_* credentials from root and GCAL_* tuning from api
func OptionsFromConfig(root, api config.Conf) Options {
	g := root.Prefix("GOOGLE_")
	g.Require("CLIENT_ID", "CLIENT_SECRET", "ACCESS_TOKEN", "REFRESH_TOKEN")
	return Options{
		ClientID:     g.MayString("CLIENT_ID", ""),
		ClientSecret: g.MayString("CLIENT_SECRET", ""),
		RedirectURL:  g.MayString("REDIRECT_URI", ""),
		AccessToken:  g.MayString("ACCESS_TOKEN", ""),
		RefreshToken: g.MayString("REFRESH_TOKEN", ""),
		TokenExpiry:  parseExpiry(g.MayString("TOKEN_EXPIRY", "")),
		Timeout:      api.MayDuration("GCAL_TIMEOUT", defaultTimeout),
		RPS:          api.MayFloat64("GCAL_RPS", defaultRPS),
		Burst:        api.MayInt("GCAL_BURST", defaultBurst),
	}
}

// Client is a read only Google Calendar provider, safe for concurrent use
type Client struct {
	svc     *gcal.Service
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
}

var _ domain.Provider = (*Client)(nil)

// New builds the oauth2 client from pre-provisioned tokens and the calendar service over it
// the token source refreshes the access token when it expires
func New(ctx context.Context, o Options) (*Client, error) {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	hc := o.HTTPClient
	if hc == nil {
		oc := &oauth2.Config{
			ClientID:     o.ClientID,
			ClientSecret: o.ClientSecret,
			RedirectURL:  o.RedirectURL,
			Endpoint:     goauth.Endpoint,
			Scopes:       []string{gcal.CalendarReadonlyScope},
		}
		base := &http.Client{Timeout: o.Timeout}
		tok := &oauth2.Token{AccessToken: o.AccessToken, RefreshToken: o.RefreshToken, Expiry: o.TokenExpiry}
		if tok.RefreshToken != "" && tok.Expiry.IsZero() {
			tok.Expiry = time.Now()
		}
		hc = oc.Client(context.WithValue(ctx, oauth2.HTTPClient, base), tok)
		hc.Timeout = o.Timeout
	}

	opts := []option.ClientOption{option.WithHTTPClient(hc)}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Inf, 0)
	if o.RPS > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RPS), burst)
	}

	return &Client{
		svc:     svc,
		limiter: lim,
		log:     *logger.Named("gcal"),
		now:     time.Now,
	}, nil
}

// ListEvents returns one page of expanded events in the window
func (c *Client) ListEvents(ctx context.Context, q domain.EventQuery) ([]event.Raw, error) {
	var out []event.Raw
	err := c.call(ctx, opEvents, func() error {
		call := c.svc.Events.List(q.CalendarID).
			TimeMin(q.TimeMin.Format(time.RFC3339)).
			TimeMax(q.TimeMax.Format(time.RFC3339)).
			SingleEvents(q.SingleEvents).
			Context(ctx)
		if q.MaxResults > 0 {
			call = call.MaxResults(int64(q.MaxResults))
		}
		if q.OrderBy != "" {
			call = call.OrderBy(q.OrderBy)
		}
		res, err := call.Do()
		if err != nil {
			return err
		}
		out = make([]event.Raw, 0, len(res.Items))
		for _, it := range res.Items {
			if it == nil {
				continue
			}
			out = append(out, toRaw(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("calendar_id", q.CalendarID).Int("count", len(out)).Msg("events fetched")
	return out, nil
}

// ListCalendars returns the calendars visible to the account
func (c *Client) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	var out []domain.Calendar
	err := c.call(ctx, opCalendars, func() error {
		res, err := c.svc.CalendarList.List().Context(ctx).Do()
		if err != nil {
			return err
		}
		out = make([]domain.Calendar, 0, len(res.Items))
		for _, it := range res.Items {
			if it == nil {
				continue
			}
			out = append(out, domain.Calendar{
				ID:          it.Id,
				Name:        it.Summary,
				Description: it.Description,
				Primary:     it.Primary,
			})
		}
		return nil
	})
	return out, err
}

// Ping lists a single calendar to prove the credentials work
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, opCalendars, func() error {
		_, err := c.svc.CalendarList.List().MaxResults(1).Context(ctx).Do()
		return err
	})
}

// call waits on the limiter, runs fn and records the outcome
func (c *Client) call(ctx context.Context, op string, fn func() error) error {
	start := c.now()
	err := c.limiter.Wait(ctx)
	if err == nil {
		err = fn()
	}
	elapsed := c.now().Sub(start)

	status := statusOf(err)
	metrics.RecordGCal(op, status, elapsed)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Str("status", status).Dur("elapsed", elapsed).Msg("gcal call failed")
	}
	return err
}

func parseExpiry(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func toRaw(it *gcal.Event) event.Raw {
	r := event.Raw{ID: it.Id, Summary: it.Summary, Description: it.Description}
	if it.Start != nil {
		r.Start = event.Start{DateTime: it.Start.DateTime, Date: it.Start.Date}
	}
	return r
}
