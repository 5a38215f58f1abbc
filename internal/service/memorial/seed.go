package memorial

import "time"

// seedProfiles returns the demo data the store initializes itself with on
// first-ever access, so a fresh deployment never renders an empty landing
// page.
func seedProfiles(now time.Time) []Profile {
	ms := now.UnixMilli()
	return []Profile{
		{
			ID:               "demo-1",
			FullName:         "דניאל (דני) גולן",
			BirthYear:        1954,
			BirthDate:        "1954-05-14",
			DeathYear:        2023,
			DeathDate:        "2023-11-24",
			HebrewDeathDate:  "י״א בכסלו התשפ״ד",
			Email:            "admin@demo.com",
			IsPublic:         true,
			HeroImage:        "https://images.unsplash.com/photo-1544979590-7815d383921b?auto=format&fit=crop&w=1920&q=80",
			ShortDescription: "איש האדמה, מדריך טיולים ואבא למופת. אהב את הארץ לאורכה ולרוחבה.",
			Bio: "דני נולד בקיבוץ דגניה א׳, בן למייסדי הקיבוץ. את אהבתו לארץ ינק משחר ילדותו, בשדות העמק.\n\n" +
				"לאחר שירותו בגולני הקדיש את חייו לחינוך ולאהבת הארץ, והיה מדריך טיולים אגדי שהכיר כל שביל וכל נחל. " +
				"תלמידיו מספרים על אדם שידע להפוך כל אבן לסיפור.\n\n" +
				"דני היה איש משפחה מסור, אבא לשלושה וסבא גאה. השאיר אחריו מורשת של אהבת אדם ופשטות כובשת. יהי זכרו ברוך.",
			GraveLocation: "בית העלמין האזורי עמק חפר, גוש ג׳, שורה 12",
			WazeLink:      "https://waze.com/ul?ll=32.3456,34.9012&navigate=yes",
			Memories: []Memory{
				{
					ID:         "m1",
					Year:       1954,
					Author:     systemAuthor,
					Content:    "נולד בקיבוץ דגניה א׳, בן שני ליצחק ורבקה. ילד טבע שגדל בין השדות לכנרת.",
					IsOfficial: true,
					CreatedAt:  ms,
					MediaType:  MediaImage,
					MediaURL:   "https://images.unsplash.com/photo-1517409433621-e377f374758d?auto=format&fit=crop&w=800&q=80",
					Tags:       []string{TagBirth},
				},
				{
					ID:         "m2",
					Year:       1972,
					Author:     "יוסי פלד",
					Content:    "הגיוס לגולני. אני זוכר את דני בבקו״ם, עם הקיטבג הגדול והחיוך הביישן.",
					IsOfficial: false,
					CreatedAt:  ms + 1000,
					MediaType:  MediaImage,
					MediaURL:   "https://images.unsplash.com/photo-1587595431973-160d0d94add1?auto=format&fit=crop&w=800&q=80",
				},
				{
					ID:         "m3",
					Year:       1978,
					Author:     systemAuthor,
					Content:    "החתונה עם נורית בקיבוץ. ערב בלתי נשכח של ריקודים עד אור הבוקר.",
					IsOfficial: true,
					CreatedAt:  ms + 2000,
				},
				{
					ID:         "m4",
					Year:       2023,
					Author:     systemAuthor,
					Content:    "דני הלך לעולמו מוקף במשפחתו האוהבת בביתו שבמושב. יהי זכרו ברוך.",
					IsOfficial: true,
					CreatedAt:  ms + 3000,
					Tags:       []string{TagDeath},
				},
			},
			FamilyMembers: []RelatedPerson{
				{
					ID:               "f1",
					Name:             "דורון גולן",
					Relation:         "אח",
					ImageURL:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=300&q=80",
					BirthDate:        "1952-03-10",
					DeathDate:        "1973-10-06",
					ShortDescription: "נפל במלחמת יום הכיפורים. היה מוזיקאי מחונן וקצין שריון.",
					MemorialURL:      "#",
				},
				{
					ID:               "f2",
					Name:             "יצחק גולן",
					Relation:         "אבא",
					ImageURL:         "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=300&q=80",
					BirthDate:        "1920-01-15",
					DeathDate:        "1995-04-20",
					ShortDescription: "ממקימי הקיבוץ, חקלאי ואיש רוח.",
					MemorialURL:      "#",
				},
			},
		},
		{
			ID:               "demo-2",
			FullName:         "שרה לוי",
			BirthYear:        1960,
			DeathYear:        2024,
			IsPublic:         true,
			Email:            "demo@demo.com",
			HeroImage:        "https://images.unsplash.com/photo-1551836022-d5d88e9218df?auto=format&fit=crop&w=1920&q=80",
			ShortDescription: "אמא, סבתא ואומנית בנשמה.",
			Bio:              "שרה הייתה אישה של צבעים ומוזיקה.",
			Memories:         []Memory{},
			FamilyMembers:    []RelatedPerson{},
		},
	}
}
