package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loan-origination-backend/internal/adapter/http"
	appmw "loan-origination-backend/internal/adapter/middleware"
	"loan-origination-backend/internal/adapter/repository/mysql"
	"loan-origination-backend/internal/config"
	"loan-origination-backend/internal/domain/customer"
	"loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/partner"
	"loan-origination-backend/internal/infrastructure/cache"
	"loan-origination-backend/internal/infrastructure/db"
	uccustomer "loan-origination-backend/internal/usecase/customer"
	ucloan "loan-origination-backend/internal/usecase/loan"
	ucpartner "loan-origination-backend/internal/usecase/partner"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&customer.Customer{}, &partner.Partner{}, &loan.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	customerRepo := mysql.NewCustomerRepository(gdb)
	partnerRepo := mysql.NewPartnerRepository(gdb)
	txMgr := mysql.NewGormUoW(gdb)

	loanUC := ucloan.NewUsecase(loanRepo, customerRepo)
	customerUC := uccustomer.NewUsecase(customerRepo)
	partnerUC := ucpartner.NewUsecase(partnerRepo, txMgr)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	customerH := httpadp.NewCustomerHandler(customerUC)
	partnerH := httpadp.NewPartnerHandler(partnerUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	idem := appmw.Idempotency(rdb, idemTTL)

	e.GET("/health", h.Health)

	// quotes persist nothing, so retries are harmless and need no key
	e.POST("/loanoffers/quote", loanH.Quote)

	offers := e.Group("/loanoffers", idem)
	offers.POST("", loanH.CreateLoan)
	offers.GET("", loanH.ListLoans)
	offers.GET("/:loan_id", loanH.GetLoan)
	offers.DELETE("/:loan_id", loanH.DeleteLoan)

	customers := e.Group("/customers", idem)
	customers.POST("", customerH.CreateCustomer)
	customers.GET("", customerH.ListCustomers)
	customers.GET("/:customer_id", customerH.GetCustomer)
	customers.PUT("/:customer_id", customerH.UpdateCustomer)
	customers.DELETE("/:customer_id", customerH.DeleteCustomer)
	customers.GET("/:customer_id/loanoffers", loanH.ListCustomerLoans)
	customers.POST("/:customer_id/loanoffers", loanH.CreateCustomerLoan)

	partners := e.Group("/partners", idem)
	partners.POST("", partnerH.CreatePartner)
	partners.GET("", partnerH.ListPartners)
	partners.GET("/:partner_id", partnerH.GetPartner)
	partners.DELETE("/:partner_id", partnerH.DeletePartner)
	partners.POST("/:partner_id/customers", partnerH.SponsorCustomer)
	partners.GET("/:partner_id/customers", partnerH.ListPartnerCustomers)
	partners.GET("/:partner_id/customers/:customer_id", partnerH.GetPartnerCustomer)
	partners.PUT("/:partner_id/customers/:customer_id", partnerH.UpdatePartnerCustomer)
	partners.DELETE("/:partner_id/customers/:customer_id", partnerH.DeletePartnerCustomer)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
