package main

import (
	"fittrack/config"
	"fittrack/routes"
	"fittrack/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()
	utils.InitRekognition()
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
