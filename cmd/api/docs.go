package main

// @title Standing Tree Volume Calculator API
// @version 1.0
// @description Estimates standing tree height and stem volume for forest inventory, per tree and per stand.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
