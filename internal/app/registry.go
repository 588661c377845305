package app

import (
	"database/sql"

	"go-payroll/internal/addition"
	"go-payroll/internal/additiontype"
	"go-payroll/internal/auth"
	"go-payroll/internal/deduction"
	"go-payroll/internal/deductiontype"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payslip"
	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	additionTypeRepo := additiontype.NewRepository(gormDB)
	deductionTypeRepo := deductiontype.NewRepository(gormDB)
	additionRepo := addition.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	userService := user.NewService(userRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	additionTypeService := additiontype.NewService(additionTypeRepo)
	deductionTypeService := deductiontype.NewService(deductionTypeRepo)
	additionService := addition.NewService(additionRepo, additionTypeRepo, employeeRepo)
	deductionService := deduction.NewService(deductionRepo, deductionTypeRepo, employeeRepo)
	payslipService := payslip.NewService(
		db,
		payslipRepo,
		counterRepo,
		employeeRepo,
		additionRepo,
		deductionRepo,
		outboxRepo,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	employeeHandler := employee.NewHandler(employeeService)
	additionTypeHandler := additiontype.NewHandler(additionTypeService)
	deductionTypeHandler := deductiontype.NewHandler(deductionTypeService)
	additionHandler := addition.NewHandler(additionService)
	deductionHandler := deduction.NewHandler(deductionService)
	payslipHandler := payslip.NewHandler(payslipService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		additiontype.RegisterRoutes(api, additionTypeHandler, rbacService)
		deductiontype.RegisterRoutes(api, deductionTypeHandler, rbacService)
		addition.RegisterRoutes(api, additionHandler, rbacService)
		deduction.RegisterRoutes(api, deductionHandler, rbacService)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, rdb, logger)
	}

	return nil
}
