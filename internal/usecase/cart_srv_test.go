package usecase

import (
	"context"
	"sync"
	"testing"

	"ecommerce-api/internal/data/entity"
	repoMocks "ecommerce-api/internal/data/repository/mocks"
	"ecommerce-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memCartProducts mirrors the upsert semantics of the cart_product table.
type memCartProducts struct {
	mu     sync.Mutex
	nextID uint
	rows   map[[2]uint]*entity.CartProduct
}

func newMemCartProducts() *memCartProducts {
	return &memCartProducts{rows: map[[2]uint]*entity.CartProduct{}}
}

func (m *memCartProducts) FindByCartAndProduct(_ context.Context, cartID, productID uint) (*entity.CartProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[[2]uint{cartID, productID}]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *memCartProducts) AddAmount(_ context.Context, item *entity.CartProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]uint{item.CartID, item.ProductID}
	if row, ok := m.rows[key]; ok {
		row.Amount += item.Amount
		item.ID = row.ID
		return nil
	}
	m.nextID++
	item.ID = m.nextID
	copied := *item
	m.rows[key] = &copied
	return nil
}

func (m *memCartProducts) UpdateAmount(_ context.Context, id uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ID == id {
			row.Amount = amount
		}
	}
	return nil
}

func (m *memCartProducts) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, row := range m.rows {
		if row.ID == id {
			delete(m.rows, key)
		}
	}
	return nil
}

func TestCartProductService_InsertSumsAmounts(t *testing.T) {
	ctx := context.Background()
	products := new(repoMocks.MockProductRepository)
	products.On("FindByID", ctx, uint(3)).Return(&entity.Product{Base: entity.Base{ID: 3}}, nil)

	items := newMemCartProducts()
	svc := NewCartProductService(items, products, zap.NewNop())
	cart := &entity.Cart{Base: entity.Base{ID: 1}, UserID: 7, Active: true}

	first, err := svc.Insert(ctx, cart, &request.InsertCartRequest{ProductID: 3, Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Amount)

	second, err := svc.Insert(ctx, cart, &request.InsertCartRequest{ProductID: 3, Amount: 5})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same line item")
	assert.Equal(t, 7, second.Amount)
	assert.Len(t, items.rows, 1)
}

func TestCartProductService_ConcurrentInsertsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	products := new(repoMocks.MockProductRepository)
	products.On("FindByID", mock.Anything, uint(3)).Return(&entity.Product{Base: entity.Base{ID: 3}}, nil)

	items := newMemCartProducts()
	svc := NewCartProductService(items, products, zap.NewNop())
	cart := &entity.Cart{Base: entity.Base{ID: 1}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Insert(ctx, cart, &request.InsertCartRequest{ProductID: 3, Amount: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	row, _ := items.FindByCartAndProduct(ctx, 1, 3)
	require.NotNil(t, row)
	assert.Equal(t, 20, row.Amount)
}

func TestCartProductService_Errors(t *testing.T) {
	ctx := context.Background()
	cart := &entity.Cart{Base: entity.Base{ID: 1}}

	t.Run("insert unknown product", func(t *testing.T) {
		products := new(repoMocks.MockProductRepository)
		products.On("FindByID", ctx, uint(9)).Return(nil, nil)
		items := new(repoMocks.MockCartProductRepository)

		_, err := NewCartProductService(items, products, zap.NewNop()).
			Insert(ctx, cart, &request.InsertCartRequest{ProductID: 9, Amount: 1})
		assert.ErrorIs(t, err, ErrNotFound)
		items.AssertNotCalled(t, "AddAmount", mock.Anything, mock.Anything)
	})

	t.Run("update missing line item", func(t *testing.T) {
		products := new(repoMocks.MockProductRepository)
		products.On("FindByID", ctx, uint(3)).Return(&entity.Product{Base: entity.Base{ID: 3}}, nil)
		items := new(repoMocks.MockCartProductRepository)
		items.On("FindByCartAndProduct", ctx, uint(1), uint(3)).Return(nil, nil)

		_, err := NewCartProductService(items, products, zap.NewNop()).
			Update(ctx, cart, &request.UpdateCartRequest{ProductID: 3, Amount: 4})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing line item", func(t *testing.T) {
		items := new(repoMocks.MockCartProductRepository)
		items.On("FindByCartAndProduct", ctx, uint(1), uint(3)).Return(nil, nil)

		err := NewCartProductService(items, new(repoMocks.MockProductRepository), zap.NewNop()).Delete(ctx, 1, 3)
		assert.ErrorIs(t, err, ErrNotFound)
		items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("update replaces amount", func(t *testing.T) {
		products := new(repoMocks.MockProductRepository)
		products.On("FindByID", ctx, uint(3)).Return(&entity.Product{Base: entity.Base{ID: 3}}, nil)
		items := new(repoMocks.MockCartProductRepository)
		items.On("FindByCartAndProduct", ctx, uint(1), uint(3)).
			Return(&entity.CartProduct{Base: entity.Base{ID: 8}, CartID: 1, ProductID: 3, Amount: 2}, nil)
		items.On("UpdateAmount", ctx, uint(8), 4).Return(nil)

		item, err := NewCartProductService(items, products, zap.NewNop()).
			Update(ctx, cart, &request.UpdateCartRequest{ProductID: 3, Amount: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, item.Amount)
		items.AssertExpectations(t)
	})
}

func TestCartService_InsertCreatesCartOnFirstUse(t *testing.T) {
	ctx := context.Background()
	carts := new(repoMocks.MockCartRepository)
	products := new(repoMocks.MockProductRepository)
	products.On("FindByID", ctx, uint(3)).Return(&entity.Product{Base: entity.Base{ID: 3}, Name: "Mouse"}, nil)

	carts.On("FindActiveByUserID", ctx, uint(7)).Return(nil, nil).Once()
	carts.On("Create", ctx, mock.MatchedBy(func(c *entity.Cart) bool {
		return c.UserID == 7 && c.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Cart).ID = 11
	}).Return(nil)
	carts.On("FindActiveWithItems", ctx, uint(7)).Return(&entity.Cart{
		Base:   entity.Base{ID: 11},
		UserID: 7,
		CartProducts: []entity.CartProduct{
			{Base: entity.Base{ID: 1}, CartID: 11, ProductID: 3, Amount: 2, Product: &entity.Product{Base: entity.Base{ID: 3}, Name: "Mouse"}},
		},
	}, nil)

	items := newMemCartProducts()
	svc := NewCartService(carts, NewCartProductService(items, products, zap.NewNop()), zap.NewNop())

	resp, err := svc.Insert(ctx, 7, &request.InsertCartRequest{ProductID: 3, Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(11), resp.ID)
	require.Len(t, resp.CartProduct, 1)
	assert.Equal(t, "Mouse", resp.CartProduct[0].Product.Name)

	row, _ := items.FindByCartAndProduct(ctx, 11, 3)
	require.NotNil(t, row)
	carts.AssertExpectations(t)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("no active cart", func(t *testing.T) {
		carts := new(repoMocks.MockCartRepository)
		carts.On("FindActiveByUserID", ctx, uint(7)).Return(nil, nil)

		err := NewCartService(carts, nil, zap.NewNop()).Clear(ctx, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deactivates", func(t *testing.T) {
		carts := new(repoMocks.MockCartRepository)
		carts.On("FindActiveByUserID", ctx, uint(7)).Return(&entity.Cart{Base: entity.Base{ID: 4}, Active: true}, nil)
		carts.On("Deactivate", ctx, uint(4)).Return(nil)

		err := NewCartService(carts, nil, zap.NewNop()).Clear(ctx, 7)
		assert.NoError(t, err)
		carts.AssertExpectations(t)
	})
}
