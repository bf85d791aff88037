// Command seed loads a small demo catalog and member list into a fresh
// database file.
// Usage: go run cmd/seed/main.go [-db path/to/openshelf.db]
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/database"
	booksRepo "github.com/openshelf/openshelf/internal/database/books"
	membersRepo "github.com/openshelf/openshelf/internal/database/members"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/members"
)

var demoBooks = []entities.Book{
	{Title: "The Count of Monte Cristo", Copies: 3},
	{Title: "Pride and Prejudice", Copies: 2},
	{Title: "Moby-Dick", Copies: 1},
	{Title: "Frankenstein", Copies: 4},
	{Title: "The Time Machine", Copies: 2},
}

type demoMember struct {
	name  string
	email string
	pin   string
}

var demoMembers = []demoMember{
	{"Ada Lovelace", "ada@example.com", "1815"},
	{"Alan Turing", "alan@example.com", "1912"},
	{"Grace Hopper", "grace@example.com", "1906"},
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding demo data into %s...", *dbPath)

	// Start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	books := booksRepo.NewRepository(db.DB)
	for i := range demoBooks {
		if err := books.Save(&demoBooks[i]); err != nil {
			log.Fatalf("Failed to save book %q: %v", demoBooks[i].Title, err)
		}
		log.Printf("Saved: %s (%d copies)", demoBooks[i].Title, demoBooks[i].Copies)
	}

	memberService := members.NewService(membersRepo.NewRepository(db.DB), bcrypt.DefaultCost)
	for _, m := range demoMembers {
		member, err := memberService.Register(m.name, m.email, m.pin)
		if err != nil {
			log.Fatalf("Failed to register member %q: %v", m.name, err)
		}
		log.Printf("Registered: %s (id %d)", member.Name, member.ID)
	}

	log.Printf("Done.")
}
