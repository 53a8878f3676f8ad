package main

import (
	"fmt"
	"net/http"

	"github.com/krontech/worklog-backend-go/internal/config"
	appHTTP "github.com/krontech/worklog-backend-go/internal/handler/http"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
	"github.com/krontech/worklog-backend-go/internal/pkg/jwt"
	"github.com/krontech/worklog-backend-go/internal/repository/postgresql"
	authService "github.com/krontech/worklog-backend-go/internal/service/auth"
	dashboardService "github.com/krontech/worklog-backend-go/internal/service/dashboard"
	departmentService "github.com/krontech/worklog-backend-go/internal/service/department"
	employeeService "github.com/krontech/worklog-backend-go/internal/service/employee"
	worklogService "github.com/krontech/worklog-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	worklogRepo := postgresql.NewWorklogRepository(db)
	worklogTypeRepo := postgresql.NewWorklogTypeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)
	worklogSvc := worklogService.NewWorklogService(db, worklogRepo, employeeRepo, worklogTypeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, worklogRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	worklogHandler := appHTTP.NewWorklogHandler(worklogSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	worklogTypeHandler := appHTTP.NewWorklogTypeHandler(worklogTypeRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtSvc,
		authHandler,
		worklogHandler,
		dashboardHandler,
		employeeHandler,
		departmentHandler,
		worklogTypeHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
