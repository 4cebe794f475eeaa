package product

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
)

const (
	minPrice = 1
	maxPrice = 1_000_000

	maxWeight = 1000.0
)

type storer interface {
	createOne(ctx context.Context, newProduct *Product) (int64, error)
	findAll(ctx context.Context) ([]*ProductAndStockDTO, error)
	findByName(ctx context.Context, name string) (*Product, error)
	deleteOne(ctx context.Context, productID int64) error
}

type inventoryServicer interface {
	AddStock(ctx context.Context, productID int64, quantity int64) error
}

type service struct {
	store       storer
	inventory   inventoryServicer
	eventEngine eventengine.Publisher
}

func NewService(store storer, inventoryService inventoryServicer, eventEngine eventengine.Publisher) *service {
	return &service{
		store:       store,
		inventory:   inventoryService,
		eventEngine: eventEngine,
	}
}

func (s *service) createProduct(ctx context.Context, newProduct *CreateProductRequest) error {
	newProduct.Name = strings.TrimSpace(newProduct.Name)

	price, err := strconv.ParseInt(newProduct.Price, 10, 64)
	if err != nil || price < minPrice || price > maxPrice {
		return servererrors.ErrInvalidPrice
	}

	weight, err := strconv.ParseFloat(newProduct.Weight, 64)
	if err != nil || weight <= 0 || weight >= maxWeight {
		return servererrors.ErrInvalidWeight
	}

	productID, err := s.store.createOne(
		ctx,
		&Product{
			Name:   newProduct.Name,
			Price:  price,
			Weight: weight,
			Unit:   newProduct.Unit,
		},
	)
	if err != nil {
		return err
	}

	err = s.eventEngine.Publish(
		&event.Event{
			Name: event.ProductCreatedEventName,
			Payload: &event.ProductCreatedEvent{
				ProductID: productID,
				Name:      newProduct.Name,
				Price:     price,
				Unit:      newProduct.Unit,
			},
		},
	)
	if err != nil {
		log.Println("failed to publish product created event:", err)
	}

	return nil
}

// addStock resolves the product by name and increments its stock counter.
func (s *service) addStock(ctx context.Context, payload *AddStockRequest) error {
	quantity, err := strconv.ParseInt(payload.Quantity, 10, 64)
	if err != nil || quantity < 0 {
		return servererrors.ErrInvalidQuantity
	}

	existing, err := s.store.findByName(
		ctx,
		strings.TrimSpace(payload.Name),
	)
	if err != nil {
		return err
	}

	return s.inventory.AddStock(
		ctx,
		existing.ProductID,
		quantity,
	)
}

func (s *service) getAllProducts(ctx context.Context) ([]*ProductAndStockDTO, error) {
	return s.store.findAll(ctx)
}

func (s *service) deleteProduct(ctx context.Context, productID int64) error {
	if err := s.store.deleteOne(ctx, productID); err != nil {
		return err
	}

	err := s.eventEngine.Publish(
		&event.Event{
			Name: event.ProductDeletedEventName,
			Payload: &event.ProductDeletedEvent{
				ProductID: productID,
			},
		},
	)
	if err != nil {
		log.Println("failed to publish product deleted event:", err)
	}

	return nil
}
