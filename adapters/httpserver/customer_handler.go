package httpserver

import (
	"errors"
	"slices"
	"strconv"

	"github.com/SeaCloudHub/enquiry/adapters/dbcontext"
	"github.com/SeaCloudHub/enquiry/adapters/httpserver/model"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/pkg/apperror"
	"github.com/SeaCloudHub/enquiry/pkg/pagination"
	"github.com/SeaCloudHub/enquiry/pkg/validation"
	"github.com/labstack/echo/v4"
)

// ListCustomers godoc
// @Summary List customers
// @Description List customers with their transactions, ordered by id
// @Tags customer
// @Produce json
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} model.SuccessResponse{data=model.ListCustomersResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	var (
		ctx    = c.Request().Context()
		paging pagination.Paging
	)

	if err := c.Bind(&paging); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := paging.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	customers, err := s.CustomerStore.List(ctx, &paging)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return s.error(c, apperror.ErrInvalidCursor(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.ListCustomersResponse{
		Customers:  s.MapperService.ToCustomerResponses(customers),
		NextCursor: paging.NextCursor,
	})
}

// GetCustomer godoc
// @Summary Get customer
// @Description Get a customer and their transactions by id
// @Tags customer
// @Produce json
// @Param id path int true "Customer id"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customer/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := parseCustomerID(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidCustomerID(err))
	}

	cus, err := s.CustomerStore.GetByID(c.Request().Context(), id)
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, s.MapperService.ToCustomerResponse(cus))
}

// InquireCustomer godoc
// @Summary Inquire customer
// @Description Find a customer by id, by email, or by both
// @Tags customer
// @Produce json
// @Param CustomerId query string false "Customer id, up to 10 digits"
// @Param Email query string false "Customer email, up to 25 characters"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customer [get]
func (s *Server) InquireCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.InquiryRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := validation.Conform(ctx, &req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if req.IsEmpty() {
		return s.error(c, apperror.ErrNoInquiryCriteria(customer.ErrNoInquiryCriteria))
	}

	if err := req.Validate(); err != nil {
		if slices.Contains(validation.FailedFields(err), "CustomerID") {
			return s.error(c, apperror.ErrInvalidCustomerID(err))
		}

		return s.error(c, apperror.ErrInvalidEmail(err))
	}

	var (
		cus *customer.Customer
		err error
	)

	if req.CustomerID != "" {
		id, perr := parseCustomerID(req.CustomerID)
		if perr != nil {
			return s.error(c, apperror.ErrInvalidCustomerID(perr))
		}

		cus, err = s.CustomerStore.GetByID(ctx, id)
		if err == nil && req.Email != "" && !cus.MatchesEmail(req.Email) {
			err = customer.ErrCustomerNotFound
		}
	} else {
		cus, err = s.CustomerStore.GetByEmail(ctx, req.Email)
	}

	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, s.MapperService.ToCustomerResponse(cus))
}

// CreateCustomer godoc
// @Summary Create customer
// @Description Create a customer, optionally with initial transactions
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := validation.Conform(ctx, &req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	nc, err := s.MapperService.ToNewCustomer(req)
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cus, err := s.CustomerService.CreateCustomer(ctx, nc)
	if err != nil && !s.persisted(c, err) {
		return s.customerError(c, err)
	}

	return s.created(c, s.MapperService.ToCustomerResponse(cus))
}

// AddTransaction godoc
// @Summary Add transaction
// @Description Record a transaction for a customer
// @Tags customer
// @Accept json
// @Produce json
// @Param id path int true "Customer id"
// @Param payload body model.CreateTransactionRequest true "Create transaction request"
// @Success 201 {object} model.SuccessResponse{data=model.TransactionResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customer/{id}/transactions [post]
func (s *Server) AddTransaction(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateTransactionRequest
	)

	id, err := parseCustomerID(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidCustomerID(err))
	}

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := validation.Conform(ctx, &req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	nt, err := s.MapperService.ToNewTransaction(req)
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	t, err := s.CustomerService.AddTransaction(ctx, id, nt)
	if err != nil && !s.persisted(c, err) {
		return s.customerError(c, err)
	}

	return s.created(c, s.MapperService.ToTransactionResponse(t))
}

// ChangeContact godoc
// @Summary Change contact
// @Description Change the email and mobile of a customer
// @Tags customer
// @Accept json
// @Produce json
// @Param id path int true "Customer id"
// @Param payload body model.ChangeContactRequest true "Change contact request"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customer/{id}/contact [put]
func (s *Server) ChangeContact(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeContactRequest
	)

	id, err := parseCustomerID(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidCustomerID(err))
	}

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := validation.Conform(ctx, &req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cus, err := s.CustomerService.ChangeContact(ctx, id, req.Email, req.Mobile)
	if err != nil && !s.persisted(c, err) {
		return s.customerError(c, err)
	}

	return s.success(c, s.MapperService.ToCustomerResponse(cus))
}

// persisted reports whether err only concerns event dispatch after a
// committed write.
func (s *Server) persisted(c echo.Context, err error) bool {
	var dispatchErr *dbcontext.DispatchError
	if !errors.As(err, &dispatchErr) {
		return false
	}

	s.dispatchFailed(c, dispatchErr)

	return true
}

func (s *Server) customerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return s.error(c, apperror.ErrEntityNotFound(err))
	case errors.Is(err, customer.ErrCustomerAlreadyExists):
		return s.error(c, apperror.ErrEntityAlreadyExists(err))
	}

	return s.error(c, apperror.ErrInternalServer(err))
}

func parseCustomerID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, customer.ErrInvalidCustomerID
	}

	if id == 0 || id > customer.MaxID {
		return 0, customer.ErrInvalidCustomerID
	}

	return id, nil
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.GET("/customers", s.ListCustomers)
	router.POST("/customers", s.CreateCustomer)
	router.GET("/customer", s.InquireCustomer)
	router.GET("/customer/:id", s.GetCustomer)
	router.POST("/customer/:id/transactions", s.AddTransaction)
	router.PUT("/customer/:id/contact", s.ChangeContact)
}
