package main

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"gradebook/config"
	"gradebook/services/gradebook/ai"
	"gradebook/services/gradebook/delivery"
	"gradebook/services/gradebook/export"
	"gradebook/services/gradebook/repository"
	"gradebook/services/gradebook/usecase"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}
	defer db.Close()

	gormDB, err := config.BootGormDB()
	if err != nil {
		log.Fatalf("Failed to boot gorm DB: %v", err)
		return
	}

	timeout := config.GetUseCaseTimeout()

	userRepo := repository.NewUserRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)

	commentGen := ai.NewGeminiCommentGenerator(config.GetGeminiAPIKey(), config.GetAICommentTimeout(), log)
	exporter := export.NewExcelExporter()

	userUC := usecase.NewUserUseCase(userRepo, enrollmentRepo, timeout)
	academicUC := usecase.NewAcademicUseCase(classRepo, subjectRepo, semesterRepo, assignmentRepo, enrollmentRepo, timeout)
	gradeUC := usecase.NewGradeUseCase(gradeRepo, enrollmentRepo, assignmentRepo, settingRepo, timeout)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, enrollmentRepo, settingRepo, timeout)
	settingUC := usecase.NewSettingUseCase(settingRepo, semesterRepo, activityLogRepo, log, timeout)
	reportUC := usecase.NewReportUseCase(classRepo, semesterRepo, gradeRepo, attendanceRepo, enrollmentRepo, settingRepo, commentGen, exporter, timeout, config.GetAICommentTimeout())

	delivery.NewAuthHandler(app, gormDB)
	delivery.NewAdminHandler(app, userUC, academicUC, settingUC)
	delivery.NewTeacherHandler(app, academicUC, gradeUC, attendanceUC)
	delivery.NewHomeroomHandler(app, reportUC)
	delivery.NewStudentHandler(app, reportUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
