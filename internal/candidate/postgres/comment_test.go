package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/candidate"
)

func TestCandidateRepositories(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CandidateRepositories Suite")
}

// SQLiteComment mirrors the production schema without the postgres-only
// column defaults, so AutoMigrate works on sqlite.
type SQLiteComment struct {
	ID          int64     `gorm:"primaryKey"`
	CandidateID int64     `gorm:"column:candidate_id;not null;index"`
	AuthorID    int64     `gorm:"column:author_id;not null"`
	Author      string    `gorm:"column:author;not null"`
	Content     string    `gorm:"column:content;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteComment) TableName() string {
	return "candidate_comments"
}

var _ = Describe("CommentRepository", func() {
	var (
		db   *gorm.DB
		repo candidate.CommentRepository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteComment{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewCommentRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	newComment := func(candidateID int64, content string) *candidate.Comment {
		return &candidate.Comment{
			CandidateID: candidateID,
			AuthorID:    7,
			Author:      "Priya Menon",
			Content:     content,
		}
	}

	Describe("ListByCandidate", func() {
		BeforeEach(func() {
			for i, content := range []string{"first note", "second note", "third note"} {
				c := newComment(1, content)
				Expect(repo.Create(c)).To(Succeed())
				// Distinct created_at values so the newest-first order is observable.
				db.Model(&SQLiteComment{}).Where("id = ?", c.ID).
					Update("created_at", time.Date(2026, 3, 1+i, 12, 0, 0, 0, time.UTC))
			}
			Expect(repo.Create(newComment(2, "other thread"))).To(Succeed())
		})

		It("should return only the candidate's thread, newest first", func() {
			comments, err := repo.ListByCandidate(1)

			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(3))
			Expect(comments[0].Content).To(Equal("third note"))
			Expect(comments[1].Content).To(Equal("second note"))
			Expect(comments[2].Content).To(Equal("first note"))
		})

		It("should return an empty thread for a candidate without comments", func() {
			comments, err := repo.ListByCandidate(42)

			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(BeEmpty())
		})
	})

	Describe("GetByID and Delete", func() {
		It("should round-trip a comment", func() {
			c := newComment(1, "call back monday")
			Expect(repo.Create(c)).To(Succeed())

			got, err := repo.GetByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Content).To(Equal("call back monday"))
			Expect(got.Author).To(Equal("Priya Menon"))

			Expect(repo.Delete(c.ID)).To(Succeed())
			_, err = repo.GetByID(c.ID)
			Expect(err).To(Equal(internal.ErrCommentNotFound))
		})

		It("should return ErrCommentNotFound for a missing id", func() {
			_, err := repo.GetByID(99999)
			Expect(err).To(Equal(internal.ErrCommentNotFound))
		})
	})
})
