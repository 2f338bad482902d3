// file: internals/seeds/seed.go
package seeds

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	commentModel "iflow_backend/internals/features/comments/model"
	eventModel "iflow_backend/internals/features/events/model"
	hubModel "iflow_backend/internals/features/hubs/model"
	listingModel "iflow_backend/internals/features/marketplace/model"
	postModel "iflow_backend/internals/features/posts/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

// Summary dilaporkan balik ke endpoint admin setelah seeding.
type Summary struct {
	Users    int `json:"users"`
	Hubs     int `json:"hubs"`
	Events   int `json:"events"`
	Posts    int `json:"posts"`
	Listings int `json:"listings"`
}

func ptrStr(s string) *string        { return &s }
func ptrF64(f float64) *float64      { return &f }
func ptrUUID(u uuid.UUID) *uuid.UUID { return &u }

// TestData mengisi database dengan data demo: 4 user, 2 hub, 5 event,
// 8 post, dan 4 listing marketplace berikut komentarnya. Seluruhnya
// dalam satu transaksi, jadi gagal di tengah tidak meninggalkan sisa.
func TestData(ctx context.Context, db *gorm.DB) (*Summary, error) {
	var sum Summary

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users, err := seedUsers(tx)
		if err != nil {
			return err
		}
		sum.Users = len(users)

		hubs, err := seedHubs(tx, users)
		if err != nil {
			return err
		}
		sum.Hubs = len(hubs)

		n, err := seedEvents(tx, users, hubs)
		if err != nil {
			return err
		}
		sum.Events = n

		n, err = seedPosts(tx, users, hubs)
		if err != nil {
			return err
		}
		sum.Posts = n

		n, err = seedListings(tx, users, hubs)
		if err != nil {
			return err
		}
		sum.Listings = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func seedUsers(tx *gorm.DB) ([]userModel.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usernames := []string{"alice", "bob", "charlie", "diana"}
	displayNames := []string{"Alice Flow", "Bob Spinner", "Charlie Poi", "Diana Hoop"}
	props := []string{"poi", "staff", "hoop", "fan"}

	users := make([]userModel.UserModel, 0, len(usernames))
	for i, name := range usernames {
		u := userModel.UserModel{
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: string(hash),
			DisplayName:  displayNames[i],
			Bio:          ptrStr(fmt.Sprintf("Flow artist and %s enthusiast", props[i])),
		}
		if err := tx.Create(&u).Error; err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func seedHubs(tx *gorm.DB, users []userModel.UserModel) ([]hubModel.HubModel, error) {
	hubs := []hubModel.HubModel{
		{
			HubName:        "San Francisco Flow Arts",
			HubDescription: ptrStr("Bay Area flow artists community - poi, staff, hoop, and more!"),
			HubLocation:    ptrStr("San Francisco, CA"),
			HubLatitude:    ptrF64(37.7749),
			HubLongitude:   ptrF64(-122.4194),
			HubCreatedBy:   users[0].ID,
		},
		{
			HubName:        "Canary Islands Flow Community",
			HubDescription: ptrStr("Island paradise flow arts - beach sessions and fire spinning!"),
			HubLocation:    ptrStr("Tenerife, Canary Islands"),
			HubLatitude:    ptrF64(28.2916),
			HubLongitude:   ptrF64(-16.6291),
			HubCreatedBy:   users[1].ID,
		},
	}
	for i := range hubs {
		if err := tx.Create(&hubs[i]).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			m := hubModel.HubMemberModel{
				HubMemberHubID:  hubs[i].HubID,
				HubMemberUserID: u.ID,
				HubMemberRole:   "member",
			}
			if err := tx.Create(&m).Error; err != nil {
				return nil, err
			}
		}
		if err := tx.Model(&hubs[i]).
			Update("hub_member_count", len(users)).Error; err != nil {
			return nil, err
		}
	}
	return hubs, nil
}

func seedEvents(tx *gorm.DB, users []userModel.UserModel, hubs []hubModel.HubModel) (int, error) {
	now := time.Now()
	tonight := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	maxThirty := 30

	events := []eventModel.EventModel{
		{
			EventCreatedBy:    users[0].ID,
			EventHubID:        ptrUUID(hubs[0].HubID),
			EventTitle:        "Thanksgiving Flow Dinner",
			EventDescription:  ptrStr("Join us for a potluck Thanksgiving dinner followed by evening flow session!"),
			EventLocation:     ptrStr("Leavenworth, WA"),
			EventLatitude:     ptrF64(47.5962),
			EventLongitude:    ptrF64(-120.6615),
			EventStartTime:    tonight,
			EventEndTime:      tonight.Add(150 * time.Minute),
			EventMaxAttendees: &maxThirty,
		},
		{
			EventCreatedBy:   users[1].ID,
			EventHubID:       ptrUUID(hubs[0].HubID),
			EventTitle:       "Golden Gate Park Flow Jam",
			EventDescription: ptrStr("Weekly flow jam at the polo fields. Bring your props and good vibes!"),
			EventLocation:    ptrStr("Golden Gate Park, San Francisco"),
			EventLatitude:    ptrF64(37.7694),
			EventLongitude:   ptrF64(-122.4862),
			EventStartTime:   tonight.AddDate(0, 0, 1).Add(time.Hour),
			EventEndTime:     tonight.AddDate(0, 0, 1).Add(3 * time.Hour),
		},
	}

	islandTitles := []string{
		"Beach Sunset Flow Session",
		"Fire Spinning Workshop",
		"Full Moon Flow Gathering",
	}
	islandDescriptions := []string{
		"Meet at Playa de las Teresitas for sunset flow and beach vibes",
		"Learn fire safety and basic fire poi techniques. Bring your own props!",
		"Celebrate the full moon with flow, music, and community",
	}
	for i := range islandTitles {
		start := time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, now.Location()).
			AddDate(0, 0, i+1)
		events = append(events, eventModel.EventModel{
			EventCreatedBy:   users[i%len(users)].ID,
			EventHubID:       ptrUUID(hubs[1].HubID),
			EventTitle:       islandTitles[i],
			EventDescription: ptrStr(islandDescriptions[i]),
			EventLocation:    ptrStr("Tenerife, Canary Islands"),
			EventLatitude:    ptrF64(28.2916),
			EventLongitude:   ptrF64(-16.6291),
			EventStartTime:   start,
			EventEndTime:     start.Add(2 * time.Hour),
			EventIsFireEvent: i == 1,
		})
	}

	for i := range events {
		if err := tx.Create(&events[i]).Error; err != nil {
			return 0, err
		}
	}
	return len(events), nil
}

func seedPosts(tx *gorm.DB, users []userModel.UserModel, hubs []hubModel.HubModel) (int, error) {
	contents := []struct {
		text   string
		public bool
	}{
		{"Just got my new LED poi! Can't wait to try them out tonight 🔥", true},
		{"Anyone want to practice together this weekend?", true},
		{"Check out this new trick I learned! [private session notes]", false},
		{"The sunset session yesterday was amazing! Thanks everyone who came", true},
		{"Looking for recommendations on fire poi for beginners", true},
		{"Private: Working on a new routine for the competition", false},
		{"Beach flow sessions are the best! Who else loves flowing by the ocean?", true},
		{"Just ordered some new props from FlowToys!", true},
	}

	for i, c := range contents {
		p := postModel.PostModel{
			PostUserID:   users[i%len(users)].ID,
			PostHubID:    ptrUUID(hubs[i%2].HubID),
			PostContent:  c.text,
			PostIsPublic: c.public,
		}
		if err := tx.Create(&p).Error; err != nil {
			return 0, err
		}
	}
	return len(contents), nil
}

func seedListings(tx *gorm.DB, users []userModel.UserModel, hubs []hubModel.HubModel) (int, error) {
	listings := []listingModel.ListingModel{
		{
			ListingTitle:       "LED Contact Poi - Like New",
			ListingDescription: ptrStr("Barely used LED contact poi, perfect condition. Includes charger and carrying case."),
			ListingPrice:       ptrF64(120.00),
			ListingCondition:   ptrStr("like_new"),
			ListingLocation:    ptrStr("San Francisco, CA"),
		},
		{
			ListingTitle:       "Fire Staff - 5ft",
			ListingDescription: ptrStr("Professional fire staff, 5 feet long. Great for beginners and intermediate spinners."),
			ListingPrice:       ptrF64(75.00),
			ListingCondition:   ptrStr("good"),
			ListingLocation:    ptrStr("Tenerife, Canary Islands"),
		},
		{
			ListingTitle:       "Hula Hoop Set (3 hoops)",
			ListingDescription: ptrStr("Set of 3 polypro hoops in different sizes. Perfect for practicing or teaching."),
			ListingPrice:       ptrF64(45.00),
			ListingCondition:   ptrStr("good"),
			ListingLocation:    ptrStr("San Francisco, CA"),
		},
		{
			ListingTitle:       "Sock Poi - Handmade",
			ListingDescription: ptrStr("Hand-sewn sock poi, great for practice. Set of 2."),
			ListingPrice:       ptrF64(15.00),
			ListingCondition:   ptrStr("new"),
			ListingLocation:    ptrStr("Tenerife, Canary Islands"),
		},
	}

	comments := []string{
		"Is this still available?",
		"Would you ship to the mainland?",
		"Great price! I'm interested",
		"Do you have any videos of these in action?",
		"I'll take them! Can we meet this weekend?",
	}

	for i := range listings {
		listings[i].ListingUserID = users[i%len(users)].ID
		listings[i].ListingHubID = ptrUUID(hubs[i%2].HubID)
		if err := tx.Create(&listings[i]).Error; err != nil {
			return 0, err
		}

		// 1-2 komentar per listing dari user lain
		for j := 0; j < 1+i%2; j++ {
			cm := commentModel.ListingCommentModel{
				ListingID: listings[i].ListingID,
				UserID:    users[(i+j+1)%len(users)].ID,
				Content:   comments[(i+j)%len(comments)],
			}
			if err := tx.Create(&cm).Error; err != nil {
				return 0, err
			}
		}
	}
	return len(listings), nil
}
