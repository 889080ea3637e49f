package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const paymentPath = "/v1/payments/payment"

// PaymentResource wraps PayPal's v1 payment API.
type PaymentResource struct {
	client   *Client
	settings interfaces.IShopSettingsProvider
}

var _ interfaces.IPaymentResource = (*PaymentResource)(nil)

func NewPaymentResource(client *Client, settings interfaces.IShopSettingsProvider) *PaymentResource {
	return &PaymentResource{client: client, settings: settings}
}

type createPaymentRequest struct {
	Intent             string              `json:"intent"`
	Payer              payer               `json:"payer"`
	Transactions       []createTransaction `json:"transactions"`
	RedirectURLs       redirectURLs        `json:"redirect_urls"`
	ApplicationContext *applicationContext `json:"application_context,omitempty"`
}

type payer struct {
	PaymentMethod string `json:"payment_method"`
}

type createTransaction struct {
	Amount   amount   `json:"amount"`
	ItemList itemList `json:"item_list"`
}

type amount struct {
	Total    string        `json:"total"`
	Currency string        `json:"currency"`
	Details  amountDetails `json:"details"`
}

type amountDetails struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax,omitempty"`
}

type itemList struct {
	Items []item `json:"items"`
}

type item struct {
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Quantity string `json:"quantity"`
}

type redirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type applicationContext struct {
	BrandName string `json:"brand_name,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// zeroDecimalCurrencies are the PayPal currencies that reject fractional amounts.
var zeroDecimalCurrencies = map[string]bool{"HUF": true, "JPY": true, "TWD": true}

func currencyPlaces(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

func money(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// itemsSubtotal sums the rounded line prices, so the subtotal always equals
// what PayPal adds up from the item list.
func itemsSubtotal(items []entities.OrderItem, places int32) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Round(places).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// newCreatePaymentRequest renders the basket in PayPal's format. PayPal
// rejects the request when subtotal + shipping + tax differs from total.
func newCreatePaymentRequest(oc entities.OrderContext, urls interfaces.RedirectURLs, settings entities.ShopSettings) createPaymentRequest {
	currency := strings.ToUpper(oc.Currency)
	places := currencyPlaces(currency)
	items := make([]item, 0, len(oc.Items))
	for _, it := range oc.Items {
		items = append(items, item{
			Name:     it.Name,
			SKU:      it.SKU,
			Price:    money(it.Price, places),
			Currency: currency,
			Quantity: strconv.Itoa(it.Quantity),
		})
	}

	details := amountDetails{
		Subtotal: money(itemsSubtotal(oc.Items, places), places),
		Shipping: money(oc.Shipping, places),
	}
	if !oc.Tax.IsZero() {
		details.Tax = money(oc.Tax, places)
	}

	req := createPaymentRequest{
		Intent: "sale",
		Payer:  payer{PaymentMethod: "paypal"},
		Transactions: []createTransaction{{
			Amount:   amount{Total: money(oc.Total, places), Currency: currency, Details: details},
			ItemList: itemList{Items: items},
		}},
		RedirectURLs: redirectURLs{ReturnURL: urls.ReturnURL, CancelURL: urls.CancelURL},
	}
	if settings.BrandName != "" || settings.Locale != "" {
		req.ApplicationContext = &applicationContext{BrandName: settings.BrandName, Locale: settings.Locale}
	}
	return req
}

func (r *PaymentResource) Create(ctx context.Context, shopID string, oc entities.OrderContext, urls interfaces.RedirectURLs) (json.RawMessage, error) {
	settings, err := r.settings.Get(shopID)
	if err != nil {
		return nil, err
	}

	_, body, err := r.client.do(ctx, shopID, http.MethodPost, paymentPath, newCreatePaymentRequest(oc, urls, settings))
	if err != nil {
		r.client.invalidateOnUnauthorized(ctx, shopID, err)
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (r *PaymentResource) Patch(ctx context.Context, shopID string, paymentID string, patches []entities.Patch) error {
	_, _, err := r.client.do(ctx, shopID, http.MethodPatch, paymentPath+"/"+url.PathEscape(paymentID), patches)
	if err != nil {
		r.client.invalidateOnUnauthorized(ctx, shopID, err)
		return err
	}
	return nil
}

type executeRequest struct {
	PayerID string `json:"payer_id"`
}

func (r *PaymentResource) Execute(ctx context.Context, shopID string, payerID string, paymentID string) (json.RawMessage, error) {
	status, body, err := r.client.do(ctx, shopID, http.MethodPost, paymentPath+"/"+url.PathEscape(paymentID)+"/execute", executeRequest{PayerID: payerID})
	if err != nil {
		r.client.invalidateOnUnauthorized(ctx, shopID, err)
		return nil, err
	}
	if status == http.StatusNoContent || len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}
