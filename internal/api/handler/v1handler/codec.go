package v1handler

import (
	"io"
	"net/http"
	"phishguard/internal/blacklist"
	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

type checkRequest struct {
	URL       string
	ContextID string
}

type reportRequest struct {
	URL string
}

// cookieRequest carries either precomputed counts or individual cookies.
type cookieRequest struct {
	Snapshot domain.CookieSnapshot
	Cookies  []domain.Cookie
	// Individual is set when the body listed cookies instead of counts.
	Individual bool
}

// decodeBody decodes the JSON object in the request body field by field.
func decodeBody(w http.ResponseWriter, r *http.Request, field func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
	}

	d := jx.DecodeBytes(body)
	if err := d.Obj(field); err != nil {
		return serrors.With(serrors.ErrBadRequest, "invalid body: %v", err)
	}

	return nil
}

func wrapField(err error, key string) error {
	if err != nil {
		return errors.Wrapf(err, "decode field %q", key)
	}

	return nil
}

func decodeCheckRequest(d *jx.Decoder, key string, req *checkRequest) error {
	var err error
	switch key {
	case "url":
		req.URL, err = d.Str()
	case "contextId":
		req.ContextID, err = d.Str()
	default:
		return d.Skip()
	}

	return wrapField(err, key)
}

func decodeReportRequest(d *jx.Decoder, key string, req *reportRequest) error {
	if key != "url" {
		return d.Skip()
	}
	var err error
	req.URL, err = d.Str()

	return wrapField(err, key)
}

func decodeCookie(d *jx.Decoder) (domain.Cookie, error) {
	var c domain.Cookie
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			c.Name, err = d.Str()
		case "secure":
			c.Secure, err = d.Bool()
		case "httpOnly":
			c.HTTPOnly, err = d.Bool()
		default:
			return d.Skip()
		}

		return wrapField(err, key)
	})

	return c, err //nolint: wrapcheck
}

func decodeCookieRequest(d *jx.Decoder, key string, req *cookieRequest) error {
	var err error
	s := &req.Snapshot
	switch key {
	case "url":
		s.URL, err = d.Str()
	case "cookieCount":
		s.CookieCount, err = d.Int()
	case "httpOnlyCookies":
		s.HTTPOnlyCookies, err = d.Int()
	case "secureCookies":
		s.SecureCookies, err = d.Int()
	case "trackingCookies":
		s.TrackingCookies, err = d.Int()
	case "cookies":
		req.Individual = true
		err = d.Arr(func(d *jx.Decoder) error {
			c, err := decodeCookie(d)
			if err != nil {
				return err
			}
			req.Cookies = append(req.Cookies, c)

			return nil
		})
	default:
		return d.Skip()
	}

	return wrapField(err, key)
}

func decodePreferences(d *jx.Decoder, key string, prefs *domain.Preferences) error {
	var err error
	switch key {
	case "realTimeProtection":
		prefs.RealTimeProtection, err = d.Bool()
	case "autoBlock":
		prefs.AutoBlock, err = d.Bool()
	case "warnMediumRisk":
		prefs.WarnMediumRisk, err = d.Bool()
	default:
		return d.Skip()
	}

	return wrapField(err, key)
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeError(e *jx.Encoder, err Error) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(err.Code)
	e.FieldStart("message")
	e.Str(err.Message)
	e.ObjEnd()
}

func encodeVerdict(e *jx.Encoder, v domain.Verdict) {
	e.ObjStart()
	e.FieldStart("isPhishing")
	e.Bool(v.IsPhishing)
	e.FieldStart("score")
	e.Float64(v.Score)
	e.FieldStart("reason")
	e.Str(v.Reason)
	e.FieldStart("classification")
	e.Str(string(v.Classification))
	e.FieldStart("confidence")
	e.Float64(v.Confidence)
	e.FieldStart("source")
	e.Str(string(v.Source))
	e.FieldStart("checkedAt")
	encodeTime(e, v.CheckedAt)

	e.FieldStart("details")
	e.ObjStart()
	e.FieldStart("heuristicScore")
	e.Float64(v.Details.HeuristicScore)
	e.FieldStart("certScore")
	e.Float64(v.Details.CertScore)
	e.FieldStart("mlScore")
	e.Float64(v.Details.MLScore)
	if v.Details.CookieScore != nil {
		e.FieldStart("cookieScore")
		e.Float64(*v.Details.CookieScore)
	}
	if len(v.Details.Unavailable) > 0 {
		e.FieldStart("unavailable")
		e.ArrStart()
		for _, s := range v.Details.Unavailable {
			e.Str(s)
		}
		e.ArrEnd()
	}
	e.ObjEnd()

	e.ObjEnd()
}

func encodeVerdictSnapshot(e *jx.Encoder, s *domain.VerdictSnapshot) {
	e.ObjStart()
	e.FieldStart("contextId")
	e.Str(s.ContextID)
	e.FieldStart("url")
	e.Str(s.URL)
	e.FieldStart("verdict")
	encodeVerdict(e, s.Verdict)
	e.FieldStart("updatedAt")
	encodeTime(e, s.UpdatedAt)
	e.ObjEnd()
}

func encodeEvent(e *jx.Encoder, ev domain.Event) {
	e.ObjStart()
	e.FieldStart("type")
	e.Str(string(ev.Type))
	e.FieldStart("url")
	e.Str(ev.URL)
	e.FieldStart("contextId")
	e.Str(ev.ContextID)
	e.FieldStart("verdict")
	encodeVerdict(e, ev.Verdict)
	e.FieldStart("escalated")
	e.Bool(ev.Escalated)
	e.FieldStart("alert")
	e.Bool(ev.Alert)
	e.FieldStart("at")
	encodeTime(e, ev.At)
	e.ObjEnd()
}

func encodePreferences(e *jx.Encoder, p domain.Preferences) {
	e.ObjStart()
	e.FieldStart("realTimeProtection")
	e.Bool(p.RealTimeProtection)
	e.FieldStart("autoBlock")
	e.Bool(p.AutoBlock)
	e.FieldStart("warnMediumRisk")
	e.Bool(p.WarnMediumRisk)
	e.ObjEnd()
}

func encodeRefreshResult(e *jx.Encoder, res blacklist.Result) {
	e.ObjStart()
	e.FieldStart("fetched")
	e.Int(res.Fetched)
	e.FieldStart("added")
	e.Int(res.Added)
	e.FieldStart("skipped")
	e.Int(res.Skipped)
	e.FieldStart("notModified")
	e.Bool(res.NotModified)
	e.FieldStart("refreshedAt")
	encodeTime(e, res.RefreshedAt)
	e.FieldStart("size")
	e.Int(res.Size)
	e.ObjEnd()
}
