// Package main
//
// @title           Finanças API
// @version         1.0
// @description     Personal finance tracker: incomes, expenses, tags and monthly summaries.
// @BasePath        /v1
//
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description Type "Bearer {token}" to authenticate.
package main
