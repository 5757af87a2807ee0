package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fueldelivery/models"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]models.DeliveryOrder)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	args := m.Called(ctx, doNumber)
	o, _ := args.Get(0).(*models.DeliveryOrder)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(models.UpsertResult), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, doNumber string) (bool, error) {
	args := m.Called(ctx, doNumber)
	return args.Bool(0), args.Error(1)
}

type MockPrinter struct {
	mock.Mock
}

func (m *MockPrinter) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	args := m.Called(ctx, html)
	pdf, _ := args.Get(0).([]byte)
	return pdf, args.Error(1)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Upload(ctx context.Context, body []byte, filename, contentType string) (string, error) {
	args := m.Called(ctx, body, filename, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockArchiver) Delete(ctx context.Context, filename string) error {
	return m.Called(ctx, filename).Error(0)
}

type MockReceiptCleaner struct {
	mock.Mock
}

func (m *MockReceiptCleaner) RemoveArchived(ctx context.Context, doNumber string) error {
	return m.Called(ctx, doNumber).Error(0)
}

type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) CreateOperator(ctx context.Context, username, password string) error {
	return m.Called(ctx, username, password).Error(0)
}

func (m *MockOperatorRepository) GetOperator(ctx context.Context, username string) (*models.OperatorCredential, error) {
	args := m.Called(ctx, username)
	c, _ := args.Get(0).(*models.OperatorCredential)
	return c, args.Error(1)
}
