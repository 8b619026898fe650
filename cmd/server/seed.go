package main

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/article"
	"petcare_backend/internal/story"
)

type seedArticle struct {
	title       string
	description string
	category    string
	author      string
	readTime    string
	featured    bool
}

var starterArticles = []seedArticle{
	{
		title:       "New Pet Parent Survival Guide",
		description: "Day-by-day checklist covering supplies, vet visits, bonding, and house rules for the first 30 days with your adopted pet.",
		category:    "new-parent",
		author:      "Dr. Sara Khan",
		readTime:    "7 min read",
		featured:    true,
	},
	{
		title:       "Vaccination Timeline for Dogs & Cats",
		description: "Up-to-date schedule for core and optional vaccines plus tips to keep records organised.",
		category:    "health",
		author:      "Happy Paws Clinic",
		readTime:    "5 min read",
		featured:    true,
	},
	{
		title:       "DIY Healthy Treats Under 10 Minutes",
		description: "Three vet-approved recipes using pantry ingredients that work for most breeds and sizes.",
		category:    "nutrition",
		author:      "Chef Ali Rehman",
		readTime:    "4 min read",
	},
	{
		title:       "Leash Reactivity: Training Plan That Works",
		description: "Step-by-step desensitisation routine plus printable progress tracker for reactive pups.",
		category:    "training",
		author:      "K9 Coach Maria",
		readTime:    "9 min read",
	},
	{
		title:       "Seasonal Grooming Checklist",
		description: "Brush types, bath frequency, and coat-care reminders for every season of the year.",
		category:    "grooming",
		author:      "Purrfect Styles Studio",
		readTime:    "6 min read",
	},
	{
		title:       "How to Decode Common Cat Behaviours",
		description: "From slow blinks to midnight zoomies, learn what your feline is trying to tell you.",
		category:    "behavioral",
		author:      "Feline Whisperers",
		readTime:    "8 min read",
	},
	{
		title:       "Emergency Prep for Pet Owners",
		description: "Printable emergency card, go-bag essentials, and how to include pets in family drills.",
		category:    "health",
		author:      "Rescue Ready Initiative",
		readTime:    "10 min read",
		featured:    true,
	},
	{
		title:       "Choosing the Right Food Bowl",
		description: "Material pros/cons (stainless, ceramic, silicone) and how bowl design impacts digestion.",
		category:    "nutrition",
		author:      "PetGear Lab",
		readTime:    "3 min read",
	},
}

type seedStory struct {
	title        string
	story        string
	petName      string
	petType      string
	adopterName  string
	adoptionDate string
	likes        int
	comments     int
	shares       int
}

var starterStories = []seedStory{
	{
		title:        "Max Found His Forever Home!",
		story:        "After spending 8 months at the shelter, Max finally met his perfect match. Sarah was looking for an active companion for her morning runs, and Max was the perfect fit! Now they're inseparable, exploring new trails every weekend. Max has gained 5 pounds of healthy weight and his coat is shinier than ever. Thank you to everyone who shared his story!",
		petName:      "Max",
		petType:      "Dog",
		adopterName:  "Sarah Johnson",
		adoptionDate: "2024-10-15",
		likes:        234, comments: 45, shares: 67,
	},
	{
		title:        "Luna's Amazing Recovery Journey",
		story:        "Luna was found abandoned and malnourished. Thanks to the dedicated care at Happy Paws Shelter and her new mom Jennifer, she's now a healthy, playful kitty who loves sunbathing by the window. Her transformation in just 3 months has been nothing short of miraculous. She now weighs a healthy 8 pounds and purrs non-stop!",
		petName:      "Luna",
		petType:      "Cat",
		adopterName:  "Jennifer Martinez",
		adoptionDate: "2024-09-22",
		likes:        456, comments: 89, shares: 123,
	},
	{
		title:        "Charlie Brings Joy to Retirement Home",
		story:        "Charlie, a gentle golden retriever, has found his calling as a therapy dog at Sunshine Retirement Home. After being adopted by the facility director Mike, Charlie now spends his days bringing smiles to residents. He's certified as a therapy dog and has become the most popular 'employee' at the home!",
		petName:      "Charlie",
		petType:      "Dog",
		adopterName:  "Mike Anderson",
		adoptionDate: "2024-11-01",
		likes:        678, comments: 134, shares: 201,
	},
	{
		title:        "Whiskers Found Love After 3 Years",
		story:        "At 7 years old, Whiskers had been at the shelter longer than any other cat. People always passed him by for kittens. Then Emma walked in looking for a mature, calm companion. It was love at first sight! Whiskers now rules Emma's apartment and has his own Instagram with 5,000 followers. Never give up on senior pets!",
		petName:      "Whiskers",
		petType:      "Cat",
		adopterName:  "Emma Davis",
		adoptionDate: "2024-07-18",
		likes:        567, comments: 98, shares: 156,
	},
	{
		title:        "Rocky's Second Chance at Life",
		story:        "Rocky was returned to the shelter three times due to his high energy. Then trainer James adopted him and channeled that energy into agility training. Now Rocky is a champion in local competitions and helps James train other rescue dogs. Sometimes all a dog needs is the right person who understands them!",
		petName:      "Rocky",
		petType:      "Dog",
		adopterName:  "James Wilson",
		adoptionDate: "2024-06-05",
		likes:        743, comments: 112, shares: 189,
	},
	{
		title:        "Ginger's Golden Years Begin",
		story:        "At 12 years old, Ginger was surrendered when her elderly owner passed away. Most people wanted young cats, but not retired nurse Patricia. She specifically wanted a senior cat to give them the best final years. Ginger and Patricia now spend peaceful days together, proving senior pets deserve love too.",
		petName:      "Ginger",
		petType:      "Cat",
		adopterName:  "Patricia Lee",
		adoptionDate: "2024-09-03",
		likes:        678, comments: 145, shares: 234,
	},
}

// seedStarterContent inserts the canned articles and success stories. Each
// table is only seeded when it is empty, so the command is safe to re-run.
func seedStarterContent(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	articleRepo := article.NewGORMRepository(db)
	storyRepo := story.NewGORMRepository(db)

	articleCount, err := articleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if articleCount == 0 {
		for _, a := range starterArticles {
			record := &article.Article{
				Title:       a.title,
				Slug:        slug.Make(a.title),
				Description: a.description,
				Category:    a.category,
				Author:      a.author,
				ReadTime:    a.readTime,
				Featured:    a.featured,
			}
			if err := articleRepo.Create(ctx, record); err != nil {
				return err
			}
		}
		logger.Info("Seeded starter articles", zap.Int("count", len(starterArticles)))
	} else {
		logger.Info("Articles table is not empty, skipping article seed", zap.Int64("existing", articleCount))
	}

	storyCount, err := storyRepo.Count(ctx)
	if err != nil {
		return err
	}
	if storyCount == 0 {
		for _, s := range starterStories {
			adoptionDate, err := time.Parse("2006-01-02", s.adoptionDate)
			if err != nil {
				return err
			}
			record := &story.Story{
				Title:        s.title,
				Story:        s.story,
				PetName:      s.petName,
				PetType:      s.petType,
				AdopterName:  s.adopterName,
				AdoptionDate: &adoptionDate,
				Likes:        s.likes,
				Comments:     s.comments,
				Shares:       s.shares,
			}
			if err := storyRepo.Create(ctx, record); err != nil {
				return err
			}
		}
		logger.Info("Seeded starter stories", zap.Int("count", len(starterStories)))
	} else {
		logger.Info("Stories table is not empty, skipping story seed", zap.Int64("existing", storyCount))
	}

	return nil
}
