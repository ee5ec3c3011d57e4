// Package main provides the entry point for the collaborative editor
// backends. It runs a web server using the Fiber framework that proxies
// CRUD operations over asset records to an Etherpad-compatible editing
// service and opens time-boxed editing sessions for authenticated users.
// Asset records are persisted with gorm; editing sessions live on the
// remote service and in a cookie held by the caller.
package main
