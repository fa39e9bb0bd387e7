package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pagestreak/pagestreak/internal/models"
)

// CreateBookRequest holds the data needed to add a book to the library
type CreateBookRequest struct {
	Title      string
	Author     string
	TotalPages int
	ISBN       string
	CoverID    int
	Publisher  string
	Year       int
	Note       string
}

// CreateBook adds a new book in want_to_read status
func (s *Store) CreateBook(req CreateBookRequest) (*models.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("book title cannot be empty")
	}
	if req.TotalPages < 0 {
		return nil, fmt.Errorf("total pages cannot be negative")
	}

	book := models.Book{
		Title:      title,
		Author:     strings.TrimSpace(req.Author),
		TotalPages: req.TotalPages,
		Status:     models.StatusWantToRead,
		ISBN:       req.ISBN,
		CoverID:    req.CoverID,
		Publisher:  req.Publisher,
		Year:       req.Year,
		Note:       req.Note,
	}

	if err := s.db.Create(&book).Error; err != nil {
		return nil, err
	}

	return &book, nil
}

// GetBookByID retrieves a book by ID
func (s *Store) GetBookByID(id uint) (*models.Book, error) {
	var book models.Book

	err := s.db.First(&book, id).Error
	if err != nil {
		return nil, fmt.Errorf("book #%d not found", id)
	}

	return &book, nil
}

// ListBooks retrieves books, optionally filtered by reading status
func (s *Store) ListBooks(status string) ([]models.Book, error) {
	var books []models.Book

	query := s.db.Order("id ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}

	return books, nil
}

// StartBook marks a book as currently reading and stamps the start date
func (s *Store) StartBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	if book.Status == models.StatusCurrentlyReading {
		return nil, fmt.Errorf("book #%d is already being read", id)
	}

	now := time.Now()
	book.Status = models.StatusCurrentlyReading
	if book.StartedAt == nil {
		book.StartedAt = &now
	}
	book.FinishedAt = nil

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}

	return book, nil
}

// FinishBook marks a book as read and stamps the finish date
func (s *Store) FinishBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	if book.Status == models.StatusRead {
		return nil, fmt.Errorf("book #%d is already finished", id)
	}

	now := time.Now()
	book.Status = models.StatusRead
	if book.StartedAt == nil {
		book.StartedAt = &now
	}
	book.FinishedAt = &now
	book.CurrentPage = book.TotalPages

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}

	return book, nil
}

// ShelveBook moves a book back to want_to_read, clearing its dates
func (s *Store) ShelveBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	book.Status = models.StatusWantToRead
	book.StartedAt = nil
	book.FinishedAt = nil

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}

	return book, nil
}

// SetCurrentPage updates the book's bookmarked page
func (s *Store) SetCurrentPage(id uint, page int) error {
	if page < 0 {
		return fmt.Errorf("page cannot be negative")
	}

	book, err := s.GetBookByID(id)
	if err != nil {
		return err
	}

	book.CurrentPage = page
	return s.db.Save(book).Error
}

// SetRating sets the 1-5 star rating for a book (0 clears it)
func (s *Store) SetRating(id uint, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}

	book, err := s.GetBookByID(id)
	if err != nil {
		return err
	}

	book.Rating = rating
	return s.db.Save(book).Error
}

// DeleteBook removes a book and all of its reading sessions in one
// transaction, so a failed session delete never leaves orphaned rows.
func (s *Store) DeleteBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.ReadingSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(book).Error
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// SearchBooks matches books by title, author or note. Mode is one of
// "exact", "prefix" or "contains" (the default).
func (s *Store) SearchBooks(query, mode string) ([]models.Book, error) {
	var books []models.Book
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.New("search query cannot be empty")
	}

	var pattern string
	switch mode {
	case "exact":
		pattern = q
	case "prefix":
		pattern = q + "%"
	default:
		pattern = "%" + q + "%"
	}

	err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(note) LIKE ?", pattern, pattern, pattern).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}

	return books, nil
}
