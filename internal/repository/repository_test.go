package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teranga_match/internal/models"
	"teranga_match/internal/testutil"
)

func TestContainsFold(t *testing.T) {
	assert.Equal(t, "%dakar%", containsFold("DaKaR"))
	assert.Equal(t, `%50\%\_off%`, containsFold("50%_off"))
	assert.Equal(t, `%a\\b%`, containsFold(`a\b`))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repos := New(testutil.NewDB(t))

	u := &models.User{Email: "awa@example.com", PasswordHash: "h", Role: models.RoleVisitor}
	require.NoError(t, repos.Users.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := repos.Users.FindByEmail(ctx, "awa@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := repos.Users.ExistsByEmail(ctx, "awa@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	dup := &models.User{Email: "awa@example.com", PasswordHash: "h", Role: models.RoleLocal}
	assert.ErrorIs(t, repos.Users.Create(ctx, dup), ErrConflict)

	require.NoError(t, repos.Profiles.Save(ctx, &models.Profile{UserID: u.ID, City: "Dakar"}))
	got, err = repos.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Dakar", got.Profile.City)

	require.NoError(t, repos.Users.Delete(ctx, u.ID))
	_, err = repos.Users.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repos.Profiles.FindByUserID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repos.Users.Delete(ctx, u.ID), ErrNotFound)
}

func TestGuideRepository_SpecialtiesAndAgency(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	user := testutil.CreateUser(t, db, "moussa@example.com", models.RoleGuide)
	agency := &models.AgenceVoyage{Nom: "Teranga Tours", Email: "contact@teranga.sn"}
	require.NoError(t, repos.Agencies.Create(ctx, agency))

	g := &models.Guide{
		ID:             user.ID,
		Specialties:    models.NewSpecialties([]string{"Histoire", "Gastronomie"}),
		HourlyRate:     15000,
		AgenceVoyageID: &agency.ID,
	}
	require.NoError(t, repos.Guides.Create(ctx, g))

	got, err := repos.Guides.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "moussa@example.com", got.User.Email)
	assert.ElementsMatch(t, []string{"Histoire", "Gastronomie"}, got.SpecialtyNames())
	require.NotNil(t, got.AgenceVoyage)
	assert.Equal(t, "Teranga Tours", got.AgenceVoyage.Nom)

	bySpecialty, err := repos.Guides.FindBySpecialty(ctx, "  histoire ")
	require.NoError(t, err)
	require.Len(t, bySpecialty, 1)

	got.Specialties = models.NewSpecialties([]string{"Art"})
	require.NoError(t, repos.Guides.Save(ctx, got))
	got, err = repos.Guides.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Art"}, got.SpecialtyNames())

	require.NoError(t, repos.Agencies.Delete(ctx, agency.ID))
	got, err = repos.Guides.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AgenceVoyageID)

	require.NoError(t, repos.Guides.Delete(ctx, user.ID))
	_, err = repos.Guides.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuideRepository_DeleteRemovesReviews(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	guideUser := testutil.CreateUser(t, db, "guide@example.com", models.RoleGuide)
	author := testutil.CreateUser(t, db, "author@example.com", models.RoleVisitor)
	require.NoError(t, repos.Guides.Create(ctx, &models.Guide{ID: guideUser.ID}))
	require.NoError(t, repos.Reviews.Create(ctx, &models.Review{Rating: 4, AuthorID: author.ID, GuideID: &guideUser.ID}))

	require.NoError(t, repos.Guides.Delete(ctx, guideUser.ID))

	reviews, err := repos.Reviews.FindByGuide(ctx, guideUser.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.ErrorIs(t, repos.Guides.Delete(ctx, guideUser.ID), ErrNotFound)
}

func TestUserRepository_DeleteCascadesGuideAndParticipation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	org := testutil.CreateUser(t, db, "org@example.com", models.RoleOrganizer)
	guideUser := testutil.CreateUser(t, db, "guide@example.com", models.RoleGuide)
	fan := testutil.CreateUser(t, db, "fan@example.com", models.RoleVisitor)

	e := &models.Event{Title: "Tabaski à Touba", OrganizerID: &org.ID}
	require.NoError(t, repos.Events.Create(ctx, e))
	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, guideUser.ID))
	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, fan.ID))

	require.NoError(t, repos.Guides.Create(ctx, &models.Guide{
		ID:          guideUser.ID,
		Specialties: models.NewSpecialties([]string{"Religion"}),
	}))
	require.NoError(t, repos.Reviews.Create(ctx, &models.Review{Rating: 5, AuthorID: fan.ID, GuideID: &guideUser.ID}))

	require.NoError(t, repos.Users.Delete(ctx, guideUser.ID))

	got, err := repos.Events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Registered)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, fan.ID, got.Participants[0].ID)

	_, err = repos.Guides.FindByID(ctx, guideUser.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	all, err := repos.Guides.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var specialties int64
	require.NoError(t, db.Model(&models.GuideSpecialty{}).Count(&specialties).Error)
	assert.Zero(t, specialties)
	reviews, err := repos.Reviews.FindByGuide(ctx, guideUser.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestEventRepository_SaveLeavesRegisteredAlone(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	org := testutil.CreateUser(t, db, "org@example.com", models.RoleOrganizer)
	fan := testutil.CreateUser(t, db, "fan@example.com", models.RoleVisitor)
	e := &models.Event{Title: "Simb", OrganizerID: &org.ID}
	require.NoError(t, repos.Events.Create(ctx, e))
	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, fan.ID))

	e.Title = "Simb de Pikine"
	e.Registered = 0
	require.NoError(t, repos.Events.Save(ctx, e))

	got, err := repos.Events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Simb de Pikine", got.Title)
	assert.Equal(t, 1, got.Registered)
}

func TestPlaceRepository_Search(t *testing.T) {
	ctx := context.Background()
	repos := New(testutil.NewDB(t))

	for _, p := range []models.Place{
		{Name: "Musée des Civilisations Noires", Type: models.PlaceMuseum, Address: "Route de l'Aéroport, Dakar"},
		{Name: "Chez Loutcha", Type: models.PlaceRestaurant, Address: "Rue Moussé Diop, Dakar"},
		{Name: "Plage de Saly", Type: models.PlaceBeach, Address: "Saly Portudal"},
	} {
		require.NoError(t, repos.Places.Create(ctx, &p))
	}

	byName, err := repos.Places.SearchByName(ctx, "LOUTCHA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Chez Loutcha", byName[0].Name)

	byAddr, err := repos.Places.SearchByAddress(ctx, "dakar")
	require.NoError(t, err)
	assert.Len(t, byAddr, 2)

	byType, err := repos.Places.FindByType(ctx, models.PlaceBeach)
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	none, err := repos.Places.SearchByName(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepository_Participants(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	org := testutil.CreateUser(t, db, "org@example.com", models.RoleOrganizer)
	fan := testutil.CreateUser(t, db, "fan@example.com", models.RoleVisitor)

	e := &models.Event{Title: "Lutte à Bercy", Type: "Sport", Status: "UPCOMING", OrganizerID: &org.ID}
	require.NoError(t, repos.Events.Create(ctx, e))

	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, fan.ID))
	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, fan.ID))

	got, err := repos.Events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Registered)
	assert.True(t, got.HasParticipant(fan.ID))
	require.NotNil(t, got.Organizer)
	assert.Equal(t, org.ID, got.Organizer.ID)

	byType, err := repos.Events.FindByType(ctx, "sport")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	require.NoError(t, repos.Events.RemoveParticipant(ctx, e.ID, fan.ID))
	require.NoError(t, repos.Events.RemoveParticipant(ctx, e.ID, fan.ID))
	got, err = repos.Events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Registered)
	assert.Empty(t, got.Participants)

	require.NoError(t, repos.Events.AddParticipant(ctx, e.ID, fan.ID))
	require.NoError(t, repos.Events.Delete(ctx, e.ID))
	_, err = repos.Events.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepository_FindEndedWithStatus(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	visitor := testutil.CreateUser(t, db, "v@example.com", models.RoleVisitor)
	guideUser := testutil.CreateUser(t, db, "g@example.com", models.RoleGuide)
	require.NoError(t, repos.Guides.Create(ctx, &models.Guide{ID: guideUser.ID}))

	now := time.Now().UTC()
	past := &models.Booking{
		StartDateTime: now.Add(-3 * time.Hour), EndDateTime: now.Add(-time.Hour),
		Status: models.BookingConfirmed, VisitorID: visitor.ID, GuideID: guideUser.ID,
	}
	future := &models.Booking{
		StartDateTime: now.Add(time.Hour), EndDateTime: now.Add(2 * time.Hour),
		Status: models.BookingConfirmed, VisitorID: visitor.ID, GuideID: guideUser.ID,
	}
	require.NoError(t, repos.Bookings.Create(ctx, past))
	require.NoError(t, repos.Bookings.Create(ctx, future))

	ended, err := repos.Bookings.FindEndedWithStatus(ctx, models.BookingConfirmed, now)
	require.NoError(t, err)
	require.Len(t, ended, 1)
	assert.Equal(t, past.ID, ended[0].ID)

	mine, err := repos.Bookings.FindByVisitor(ctx, visitor.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.NotNil(t, mine[0].Guide)
	assert.Equal(t, past.ID, mine[0].ID)
}

func TestMatchRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	a := testutil.CreateUser(t, db, "a@example.com", models.RoleVisitor)
	b := testutil.CreateUser(t, db, "b@example.com", models.RoleLocal)
	c := testutil.CreateUser(t, db, "c@example.com", models.RoleLocal)

	require.NoError(t, repos.Matches.Create(ctx, &models.Match{User1ID: a.ID, User2ID: b.ID, Score: 0.8, Status: models.MatchPending}))
	require.NoError(t, repos.Matches.Create(ctx, &models.Match{User1ID: c.ID, User2ID: a.ID, Score: 0.9, Status: models.MatchAccepted}))
	require.NoError(t, repos.Matches.Create(ctx, &models.Match{User1ID: b.ID, User2ID: c.ID, Score: 0.5, Status: models.MatchPending}))

	forA, err := repos.Matches.FindByUser(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, 0.9, forA[0].Score)

	pending, err := repos.Matches.FindByStatus(ctx, models.MatchPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestReviewRepository_AverageForGuide(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repos := New(db)

	author := testutil.CreateUser(t, db, "author@example.com", models.RoleVisitor)
	guideUser := testutil.CreateUser(t, db, "guide@example.com", models.RoleGuide)
	require.NoError(t, repos.Guides.Create(ctx, &models.Guide{ID: guideUser.ID}))

	avg, n, err := repos.Reviews.AverageForGuide(ctx, guideUser.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, n)

	for _, rating := range []int{4, 5} {
		require.NoError(t, repos.Reviews.Create(ctx, &models.Review{Rating: rating, AuthorID: author.ID, GuideID: &guideUser.ID}))
	}
	avg, n, err = repos.Reviews.AverageForGuide(ctx, guideUser.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 1e-9)
	assert.EqualValues(t, 2, n)

	byGuide, err := repos.Reviews.FindByGuide(ctx, guideUser.ID)
	require.NoError(t, err)
	require.Len(t, byGuide, 2)
	require.NotNil(t, byGuide[0].Author)
}

func TestMediaRepository_FindByRelated(t *testing.T) {
	ctx := context.Background()
	repos := New(testutil.NewDB(t))

	m := &models.Media{URL: "/uploads/a.jpg", Type: models.MediaImage, Status: models.ModerationPending, RelatedType: models.RelatedPlace, RelatedID: 7}
	require.NoError(t, repos.Media.Create(ctx, m))
	require.NoError(t, repos.Media.Create(ctx, &models.Media{URL: "/uploads/b.jpg", Type: models.MediaImage, Status: models.ModerationPending, RelatedType: models.RelatedEvent, RelatedID: 7}))

	items, err := repos.Media.FindByRelated(ctx, models.RelatedPlace, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, m.ID, items[0].ID)

	m.Status = models.ModerationApproved
	require.NoError(t, repos.Media.Save(ctx, m))
	approved, err := repos.Media.FindByStatus(ctx, models.ModerationApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	require.NoError(t, repos.Media.Delete(ctx, m.ID))
	assert.ErrorIs(t, repos.Media.Delete(ctx, m.ID), ErrNotFound)
}

func TestArticleRepository_SearchAndCategory(t *testing.T) {
	ctx := context.Background()
	repos := New(testutil.NewDB(t))

	require.NoError(t, repos.Articles.Create(ctx, &models.Article{Title: "Gorée, mémoire", Excerpt: "Une île", Category: "Histoire"}))
	require.NoError(t, repos.Articles.Create(ctx, &models.Article{Title: "Le thiéboudienne", Excerpt: "Plat national de Gorée à Dakar", Category: "Culture"}))

	found, err := repos.Articles.Search(ctx, "GORée")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repos.Articles.Search(ctx, "DAKAR")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Le thiéboudienne", found[0].Title)

	byCat, err := repos.Articles.FindByCategory(ctx, "histoire")
	require.NoError(t, err)
	require.Len(t, byCat, 1)

	all, err := repos.Articles.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Le thiéboudienne", all[0].Title)
}
