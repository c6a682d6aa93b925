package main

import (
	"flag"
	"fmt"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
)

// Creates a dashboard operator account. There is no sign-up flow in the web
// application, so accounts are provisioned from the command line.
func main() {
	var (
		email     = flag.String("email", "", "login email (required)")
		password  = flag.String("password", "", "login password (required)")
		firstName = flag.String("first-name", "", "first name")
		lastName  = flag.String("last-name", "", "last name")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Both -email and -password are required")
		return
	}

	config.Load()
	defer config.GetDB().Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
