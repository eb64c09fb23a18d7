package repository_test

import (
	"fmt"
	"testing"

	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Comment{},
		&models.Article{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArticle(t *testing.T, repo *repository.ArticleRepository, author *models.User, title, text string, categories ...models.Category) *models.Article {
	t.Helper()
	article := &models.Article{
		Title:      title,
		Text:       text,
		Categories: categories,
	}
	if author != nil {
		article.AuthorID = &author.ID
	}
	require.NoError(t, repo.Create(article))
	return article
}

func titles(articles []models.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func TestListOrderByTitle(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	author := seedUser(t, db, "writer")

	seedArticle(t, repo, author, "Nebula", "")
	seedArticle(t, repo, author, "Asteroid", "")
	seedArticle(t, repo, author, "Quasar", "")

	ascending, err := repo.List(repository.ArticleListOptions{OrderBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Asteroid", "Nebula", "Quasar"}, titles(ascending))

	descending, err := repo.List(repository.ArticleListOptions{OrderBy: "-title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Quasar", "Nebula", "Asteroid"}, titles(descending))
}

func TestListOrderByUnknownField(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)

	_, err := repo.List(repository.ArticleListOptions{OrderBy: "no_such_column"})
	assert.ErrorIs(t, err, repository.ErrUnknownOrderField)

	_, err = repo.List(repository.ArticleListOptions{OrderBy: "-no_such_column"})
	assert.ErrorIs(t, err, repository.ErrUnknownOrderField)
}

func TestListCategoryFilter(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	author := seedUser(t, db, "writer")

	stars := models.Category{Name: "Stars"}
	planets := models.Category{Name: "Planets"}
	require.NoError(t, db.Create(&stars).Error)
	require.NoError(t, db.Create(&planets).Error)

	seedArticle(t, repo, author, "Sun", "", stars)
	seedArticle(t, repo, author, "Mars", "", planets)
	seedArticle(t, repo, author, "Proxima", "", stars, planets)

	got, err := repo.List(repository.ArticleListOptions{OrderBy: "title", CategoryID: &stars.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Proxima", "Sun"}, titles(got))
}

func TestListSearchUnionNoDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	author := seedUser(t, db, "writer")

	// Matches both filters: "comet" in title and in text
	seedArticle(t, repo, author, "Halley comet", "the comet returns every 76 years")
	// Title-only match
	seedArticle(t, repo, author, "comet tails", "dust and ion trails")
	// Text-only match
	seedArticle(t, repo, author, "Oort cloud", "home of long-period comet nuclei")
	// No match
	seedArticle(t, repo, author, "Saturn", "rings of ice")

	got, err := repo.List(repository.ArticleListOptions{Search: "comet"})
	require.NoError(t, err)

	require.Len(t, got, 3)
	seen := make(map[uint]int)
	for _, a := range got {
		seen[a.ID]++
	}
	for id, count := range seen {
		assert.Equalf(t, 1, count, "article %d returned more than once", id)
	}
}

func TestListSearchAppliesAfterCategoryRestriction(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	author := seedUser(t, db, "writer")

	stars := models.Category{Name: "Stars"}
	require.NoError(t, db.Create(&stars).Error)

	seedArticle(t, repo, author, "Red dwarf", "a small cool star", stars)
	seedArticle(t, repo, author, "Red planet", "iron oxide dust")

	got, err := repo.List(repository.ArticleListOptions{CategoryID: &stars.ID, Search: "Red"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Red dwarf"}, titles(got))
}

func TestListByAuthor(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedArticle(t, repo, alice, "Mine", "")
	seedArticle(t, repo, bob, "Theirs", "")

	got, err := repo.List(repository.ArticleListOptions{AuthorID: &alice.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mine"}, titles(got))
}

func TestGetByIDPreloadsRelations(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)
	author := seedUser(t, db, "writer")

	stars := models.Category{Name: "Stars"}
	require.NoError(t, db.Create(&stars).Error)
	article := seedArticle(t, repo, author, "Sun", "our star", stars)

	commenter := seedUser(t, db, "reader")
	comment := &models.Comment{AuthorID: &commenter.ID, Text: "nice"}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, repo.AddComment(article, comment))

	got, err := repo.GetByID(article.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Author)
	assert.Equal(t, "writer", got.Author.Username)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Stars", got.Categories[0].Name)
	require.Len(t, got.Comments, 1)
	require.NotNil(t, got.Comments[0].Author)
	assert.Equal(t, "reader", got.Comments[0].Author.Username)
}

func TestGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewArticleRepository(db)

	_, err := repo.GetByID(12345)
	assert.ErrorIs(t, err, repository.ErrArticleNotFound)
}

func TestUserDeleteCascade(t *testing.T) {
	db := openTestDB(t)
	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)

	author := seedUser(t, db, "leaving")
	article := seedArticle(t, articleRepo, author, "Orphaned", "survives the author")

	comment := &models.Comment{AuthorID: &author.ID, Text: "my own note"}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, articleRepo.AddComment(article, comment))

	require.NoError(t, userRepo.DeleteCascade(author.ID))

	// The account and its comments are gone
	_, err := userRepo.GetByID(author.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Zero(t, commentCount)

	// The article survives with its author cleared
	got, err := articleRepo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AuthorID)
	assert.Nil(t, got.Author)
	assert.Empty(t, got.Comments)
}
