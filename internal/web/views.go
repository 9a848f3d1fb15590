package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageList         = "list"
	pageDetail       = "detail"
	pageConfirmation = "confirmation"
	pageWallet       = "wallet"
)

const (
	navHome   = "home"
	navWallet = "wallet"
)

type listPage struct {
	Nav        string
	Selected   string
	Categories []string
	Merchants  []merchant.Merchant
}

type detailPage struct {
	Nav        string
	Service    string
	TimeSlot   string
	Error      string
	Merchant   merchant.Merchant
	Cashback   model.Coins
	Found      bool
	Incomplete bool
}

type confirmationPage struct {
	Nav      string
	Booking  booking.Booking
	Merchant merchant.Merchant
}

type walletPage struct {
	Nav          string
	Error        string
	Transactions []wallet.Transaction
	Wallet       wallet.Wallet
}

var viewFuncs = template.FuncMap{
	"inr": func(c model.Coins) string {
		return fmt.Sprintf("%.2f", c.ToINR())
	},
	"signed": func(c model.Coins) string {
		if c.ToFloat64() > 0 {
			return "+" + c.String()
		}
		return c.String()
	},
	"positive": func(c model.Coins) bool {
		return c.ToFloat64() > 0
	},
	"padID": func(id int64) string {
		return fmt.Sprintf("%06d", id)
	},
	"longDate": func(t time.Time) string {
		return t.Format("Monday, January 2, 2006")
	},
	"shortDate": func(t time.Time) string {
		return t.Format("Jan 2, 03:04 PM")
	},
}

type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageList, pageDetail, pageConfirmation, pageWallet} {
		t, err := template.New(name).
			Funcs(viewFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s view: %w", name, err)
		}
		pages[name] = t
	}
	return &views{pages: pages}, nil
}

// render buffers the page and writes nothing if the template fails.
func (v *views) render(w http.ResponseWriter, code int, name string, data any) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %s", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s view: %w", name, err)
	}

	w.Header().Set(model.HeaderContentType, contentTypeHTML)
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s view: %w", name, err)
	}
	return nil
}

const contentTypeHTML = "text/html; charset=utf-8"
