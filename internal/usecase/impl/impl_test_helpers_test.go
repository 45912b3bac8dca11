package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"giftie/internal/domain/entity"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/service"
	"giftie/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubCatalog is a fixed in-memory catalog for tests that need precise
// control over stock levels and prices.
type stubCatalog struct {
	products []entity.Product
	methods  []entity.PaymentMethod
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		products: []entity.Product{
			{
				ID:          "p1",
				Name:        "Móc khóa Hà Nội",
				Description: "Móc khóa lưu niệm",
				Price:       150000,
				Category:    "moc-khoa",
				Tags:        []string{"Hà Nội"},
				InStock:     true,
				Rating:      4.5,
			},
			{
				ID:          "p2",
				Name:        "Túi xách Sapa",
				Description: "Túi xách thổ cẩm",
				Price:       450000,
				Category:    "tui-xach",
				Tags:        []string{"Sapa"},
				InStock:     true,
				Rating:      4.8,
			},
			{
				ID:          "p3",
				Name:        "Áo thun Đà Nẵng",
				Description: "Áo thun cotton",
				Price:       250000,
				Category:    "ao-thun",
				Tags:        []string{"Đà Nẵng"},
				InStock:     false,
				Rating:      4.3,
			},
		},
		methods: []entity.PaymentMethod{
			{ID: "cod", Name: "Thanh toán khi nhận hàng", Type: entity.PaymentMethodCOD},
			{ID: "bank", Name: "Chuyển khoản ngân hàng", Type: entity.PaymentMethodBank},
			{ID: "card", Name: "Thẻ tín dụng/ghi nợ", Type: entity.PaymentMethodCard},
		},
	}
}

func (c *stubCatalog) Products(ctx context.Context) ([]entity.Product, error) {
	return c.products, nil
}

func (c *stubCatalog) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (c *stubCatalog) Categories(ctx context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (c *stubCatalog) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return c.methods, nil
}

// capturePublisher records published order events so tests can assert on
// them. An optional error simulates a broker outage.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
	fail   error
}

func (p *capturePublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if p.fail != nil {
		return p.fail
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error {
	return nil
}

func (p *capturePublisher) published() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderEvent(nil), p.events...)
}

// validCheckoutInput returns a checkout form that passes validation for the
// given payment method id.
func validCheckoutInput(method string) *usecase.PlaceOrderInput {
	input := &usecase.PlaceOrderInput{}
	input.ShippingInfo.FullName = "Nguyễn Văn A"
	input.ShippingInfo.Phone = "0987654321"
	input.ShippingInfo.Address = "123 Phố Huế"
	input.ShippingInfo.City = "Hà Nội"
	input.ShippingInfo.District = "Hai Bà Trưng"
	input.ShippingInfo.Ward = "Phố Huế"
	input.PaymentInfo.Method = method
	if method == "card" {
		input.PaymentInfo.CardNumber = "4111111111111111"
		input.PaymentInfo.CardHolder = "NGUYEN VAN A"
		input.PaymentInfo.ExpiryDate = "12/27"
		input.PaymentInfo.CVV = "123"
	}

	return input
}
