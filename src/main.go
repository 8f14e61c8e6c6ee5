package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-Feedback-Journey/src/database"
	"Backend-Feedback-Journey/src/jobs"
	"Backend-Feedback-Journey/src/routes"
	"Backend-Feedback-Journey/src/services/answers"
	"Backend-Feedback-Journey/src/services/feedback"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/hibiken/asynq"
)

func main() {

	// เชื่อมต่อ MongoDB / Redis — ไม่มีตัวไหนก็รันต่อแบบ dev mode
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis()
	database.InitAsynq()

	// เลือก backend ของ store ตามที่ต่อสำเร็จ
	answers.Init()
	feedback.Init()

	// worker สำหรับ notification task — รันเฉพาะเมื่อมี Redis
	if database.RedisClient != nil {
		srv := asynq.NewServer(
			asynq.RedisClientOpt{Addr: database.RedisURI},
			asynq.Config{Concurrency: 5},
		)
		mux := asynq.NewServeMux()
		jobs.RegisterHandlers(mux)
		go func() {
			if err := srv.Run(mux); err != nil {
				log.Println("❌ asynq worker:", err)
			}
		}()
	}

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
