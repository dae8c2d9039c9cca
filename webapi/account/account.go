// Package account exposes the ledger operations over HTTP. Handlers are pure
// translation: bind and validate the request, call the service, map the
// outcome to the wire contract.
package account

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/kongbank/accounts/pkg/dto"
	accountsvc "github.com/kongbank/accounts/pkg/service/account"
	"github.com/kongbank/accounts/webapi/common"
)

// Routes registers the account endpoints:
//   - GET    /accounts          : List all accounts.
//   - POST   /accounts          : Create a new account.
//   - GET    /accounts/:id      : Retrieve a single account.
//   - POST   /accounts/:id/debit  : Decrease an account's balance.
//   - POST   /accounts/:id/credit : Increase an account's balance.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Get("/accounts", ListAccounts(svc))
	app.Post("/accounts", CreateAccount(svc))
	app.Get("/accounts/:id", GetAccount(svc))
	app.Post("/accounts/:id/debit", DebitAccount(svc))
	app.Post("/accounts/:id/credit", CreditAccount(svc))
}

// ListAccounts returns a handler producing the full account list.
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	}
}

// CreateAccount returns a handler that opens a new account.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Create(c.Context(), dto.AccountCreate{
			Kind:           input.Kind,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.DomainErrorJSON(c, "create account", err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// GetAccount returns a handler that fetches one account by id.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		a, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "retrieve account", err)
		}
		return c.JSON(a)
	}
}

// DebitAccount returns a handler that decreases an account's balance.
func DebitAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateBalanceRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Debit(c.Context(), id, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "debit account", err)
		}
		return c.JSON(a)
	}
}

// CreditAccount returns a handler that increases an account's balance.
func CreditAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateBalanceRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Credit(c.Context(), id, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "credit account", err)
		}
		return c.JSON(a)
	}
}

// parseAccountID reads the :id path parameter. A non-uuid id is invalid input,
// never a lookup miss. ok=false means the error response was already written.
func parseAccountID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false, common.ErrorJSON(c, fiber.StatusBadRequest, common.CodeInvalidInput,
			fmt.Sprintf("Invalid account id: %q", c.Params("id")))
	}
	return id, true, nil
}
