// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	BlogPost struct {
		ID, Slug, Title, Excerpt, Content, Image, Images, Author, Category, ReadTime, PublishedAt, Active, Tags, SeoTitle, SeoDescription, SeoKeywords, ExternalLink, ExternalLinkTitle, ExternalLinkButton, Version, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Room struct {
		ID, Name, Description, Image, Images, Price, Capacity, Size, Amenities, Order, Active, Version, CreatedAt, UpdatedAt string
	}
	SiteSetting struct {
		Key, Value, UpdatedAt string
	}
	Translation struct {
		ID, Key, Locale, Value, Category, CreatedAt, UpdatedAt string
	}
}{
	BlogPost: struct {
		ID, Slug, Title, Excerpt, Content, Image, Images, Author, Category, ReadTime, PublishedAt, Active, Tags, SeoTitle, SeoDescription, SeoKeywords, ExternalLink, ExternalLinkTitle, ExternalLinkButton, Version, CreatedAt, UpdatedAt string
	}{
		ID:                 "id",
		Slug:               "slug",
		Title:              "title",
		Excerpt:            "excerpt",
		Content:            "content",
		Image:              "image",
		Images:             "images",
		Author:             "author",
		Category:           "category",
		ReadTime:           "readTime",
		PublishedAt:        "publishedAt",
		Active:             "active",
		Tags:               "tags",
		SeoTitle:           "seoTitle",
		SeoDescription:     "seoDescription",
		SeoKeywords:        "seoKeywords",
		ExternalLink:       "externalLink",
		ExternalLinkTitle:  "externalLinkTitle",
		ExternalLinkButton: "externalLinkButton",
		Version:            "version",
		CreatedAt:          "createdAt",
		UpdatedAt:          "updatedAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Room: struct {
		ID, Name, Description, Image, Images, Price, Capacity, Size, Amenities, Order, Active, Version, CreatedAt, UpdatedAt string
	}{
		ID:          "id",
		Name:        "name",
		Description: "description",
		Image:       "image",
		Images:      "images",
		Price:       "price",
		Capacity:    "capacity",
		Size:        "size",
		Amenities:   "amenities",
		Order:       "order",
		Active:      "active",
		Version:     "version",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	SiteSetting: struct {
		Key, Value, UpdatedAt string
	}{
		Key:       "key",
		Value:     "value",
		UpdatedAt: "updatedAt",
	},
	Translation: struct {
		ID, Key, Locale, Value, Category, CreatedAt, UpdatedAt string
	}{
		ID:        "id",
		Key:       "key",
		Locale:    "locale",
		Value:     "value",
		Category:  "category",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
}

var Tables = struct {
	BlogPost struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Room struct {
		Name, Alias string
	}
	SiteSetting struct {
		Name, Alias string
	}
	Translation struct {
		Name, Alias string
	}
}{
	BlogPost: struct {
		Name, Alias string
	}{
		Name:  "blog_posts",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Room: struct {
		Name, Alias string
	}{
		Name:  "rooms",
		Alias: "t",
	},
	SiteSetting: struct {
		Name, Alias string
	}{
		Name:  "site_settings",
		Alias: "t",
	},
	Translation: struct {
		Name, Alias string
	}{
		Name:  "translations",
		Alias: "t",
	},
}

type BlogPost struct {
	tableName struct{} `pg:"blog_posts,alias:t,discard_unknown_columns"`

	ID                 string    `pg:"id,pk"`
	Slug               JSON      `pg:"slug,type:jsonb"`
	Title              JSON      `pg:"title,type:jsonb"`
	Excerpt            JSON      `pg:"excerpt,type:jsonb"`
	Content            JSON      `pg:"content,type:jsonb"`
	Image              string    `pg:"image,use_zero"`
	Images             JSON      `pg:"images,type:jsonb"`
	Author             string    `pg:"author,use_zero"`
	Category           string    `pg:"category,use_zero"`
	ReadTime           string    `pg:"readTime,use_zero"`
	PublishedAt        time.Time `pg:"publishedAt,use_zero"`
	Active             *bool     `pg:"active"`
	Tags               JSON      `pg:"tags,type:jsonb"`
	SeoTitle           JSON      `pg:"seoTitle,type:jsonb"`
	SeoDescription     JSON      `pg:"seoDescription,type:jsonb"`
	SeoKeywords        JSON      `pg:"seoKeywords,type:jsonb"`
	ExternalLink       *string   `pg:"externalLink"`
	ExternalLinkTitle  JSON      `pg:"externalLinkTitle,type:jsonb"`
	ExternalLinkButton JSON      `pg:"externalLinkButton,type:jsonb"`
	Version            int       `pg:"version,use_zero"`
	CreatedAt          time.Time `pg:"createdAt,use_zero"`
	UpdatedAt          time.Time `pg:"updatedAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Room struct {
	tableName struct{} `pg:"rooms,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Name        JSON      `pg:"name,type:jsonb"`
	Description JSON      `pg:"description,type:jsonb"`
	Image       string    `pg:"image,use_zero"`
	Images      JSON      `pg:"images,type:jsonb"`
	Price       float64   `pg:"price,use_zero"`
	Capacity    string    `pg:"capacity,use_zero"`
	Size        string    `pg:"size,use_zero"`
	Amenities   JSON      `pg:"amenities,type:jsonb"`
	Order       int       `pg:"order,use_zero"`
	Active      *bool     `pg:"active"`
	Version     int       `pg:"version,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`
}

type SiteSetting struct {
	tableName struct{} `pg:"site_settings,alias:t,discard_unknown_columns"`

	Key       string    `pg:"key,pk"`
	Value     JSON      `pg:"value,type:jsonb"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}

type Translation struct {
	tableName struct{} `pg:"translations,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Key       string    `pg:"key,use_zero"`
	Locale    string    `pg:"locale,use_zero"`
	Value     string    `pg:"value,use_zero"`
	Category  string    `pg:"category,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}
