// Package model defines the records stored by the site: content shown on
// public pages, submissions from visitors, and site-wide settings.
package model

import "time"

// Project statuses.
const (
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
)

// Quote statuses. Any status may follow any other.
const (
	QuoteNew       = "new"
	QuoteContacted = "contacted"
	QuoteQuoted    = "quoted"
	QuoteClosed    = "closed"
)

// Contact statuses.
const (
	ContactUnread  = "unread"
	ContactRead    = "read"
	ContactReplied = "replied"
)

// SettingsID is the fixed primary key of the single SiteSettings row.
const SettingsID = "site"

// QuoteStatuses lists quote statuses in display order.
var QuoteStatuses = []string{QuoteNew, QuoteContacted, QuoteQuoted, QuoteClosed}

// ContactStatuses lists contact statuses in display order.
var ContactStatuses = []string{ContactUnread, ContactRead, ContactReplied}

// ProjectStatuses lists project statuses in display order.
var ProjectStatuses = []string{ProjectOngoing, ProjectCompleted}

// SeoPages is the closed set of pages that carry their own SEO metadata.
var SeoPages = []string{"home", "about", "services", "projects", "blog", "gallery", "contact", "quote"}

// BlogPost is an article shown under /blog/.
type BlogPost struct {
	ID        string    `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title" validate:"required,max=300"`
	Excerpt   string    `db:"excerpt" json:"excerpt" validate:"required"`
	Content   string    `db:"content" json:"content" validate:"required"`
	Image     string    `db:"image" json:"image"`
	Author    string    `db:"author" json:"author" validate:"required"`
	Category  string    `db:"category" json:"category" validate:"required"`
	ReadTime  string    `db:"read_time" json:"readTime"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Link returns the public URL path of the post.
func (p BlogPost) Link() string { return "/blog/" + p.Slug + "/" }

// Project is a reference project in the portfolio.
type Project struct {
	ID          string     `db:"id" json:"id"`
	Slug        string     `db:"slug" json:"slug"`
	Title       string     `db:"title" json:"title" validate:"required,max=300"`
	Category    string     `db:"category" json:"category" validate:"required"`
	Location    string     `db:"location" json:"location" validate:"required"`
	Year        string     `db:"year" json:"year"`
	Area        string     `db:"area" json:"area"`
	Client      string     `db:"client" json:"client"`
	Status      string     `db:"status" json:"status" validate:"oneof=ongoing completed"`
	Image       string     `db:"image" json:"image"`
	Gallery     StringList `db:"gallery" json:"gallery"`
	Description string     `db:"description" json:"description" validate:"required"`
	Features    StringList `db:"features" json:"features"`
	Tags        StringList `db:"tags" json:"tags"`
	Published   bool       `db:"published" json:"published"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// Link returns the public URL path of the project.
func (p Project) Link() string { return "/projeler/" + p.Slug + "/" }

// GalleryItem is a single image on the gallery page.
type GalleryItem struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title" validate:"required"`
	Category  string    `db:"category" json:"category" validate:"required"`
	Image     string    `db:"image" json:"image" validate:"required"`
	Published bool      `db:"published" json:"published"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Role      string    `db:"role" json:"role" validate:"required"`
	Company   *string   `db:"company" json:"company"`
	Content   string    `db:"content" json:"content" validate:"required"`
	Image     *string   `db:"image" json:"image"`
	Rating    int       `db:"rating" json:"rating" validate:"min=1,max=5"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Quote is a quote request submitted from the public form.
type Quote struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required"`
	Email       string    `db:"email" json:"email" validate:"required,email"`
	Phone       string    `db:"phone" json:"phone" validate:"required"`
	Company     *string   `db:"company" json:"company"`
	ProjectType string    `db:"project_type" json:"projectType" validate:"required"`
	Budget      string    `db:"budget" json:"budget" validate:"required"`
	Location    string    `db:"location" json:"location" validate:"required"`
	Timeline    *string   `db:"timeline" json:"timeline"`
	Message     *string   `db:"message" json:"message"`
	Status      string    `db:"status" json:"status" validate:"oneof=new contacted quoted closed"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Contact is a message submitted from the contact page.
type Contact struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	Phone     *string   `db:"phone" json:"phone"`
	Subject   string    `db:"subject" json:"subject" validate:"required"`
	Message   string    `db:"message" json:"message" validate:"required"`
	Status    string    `db:"status" json:"status" validate:"oneof=unread read replied"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// SeoSetting holds meta tags for one page.
type SeoSetting struct {
	ID          string    `db:"id" json:"id"`
	Page        string    `db:"page" json:"page" validate:"oneof=home about services projects blog gallery contact quote"`
	Title       string    `db:"title" json:"title" validate:"required"`
	Description string    `db:"description" json:"description" validate:"required"`
	Keywords    *string   `db:"keywords" json:"keywords"`
	OGImage     *string   `db:"og_image" json:"ogImage"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// SiteSettings carries company contact details and social links. There is
// at most one row, stored under SettingsID.
type SiteSettings struct {
	ID          string    `db:"id" json:"id"`
	CompanyName string    `db:"company_name" json:"companyName" validate:"required"`
	Phone       string    `db:"phone" json:"phone" validate:"required"`
	Phone2      *string   `db:"phone2" json:"phone2"`
	Email       string    `db:"email" json:"email" validate:"required,email"`
	Email2      *string   `db:"email2" json:"email2" validate:"omitempty,email"`
	Address     string    `db:"address" json:"address" validate:"required"`
	MapURL      *string   `db:"map_url" json:"mapUrl"`
	Facebook    *string   `db:"facebook" json:"facebook"`
	Instagram   *string   `db:"instagram" json:"instagram"`
	Twitter     *string   `db:"twitter" json:"twitter"`
	LinkedIn    *string   `db:"linkedin" json:"linkedin"`
	YouTube     *string   `db:"youtube" json:"youtube"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// User is an admin account. The password hash is never serialized.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Password  string    `db:"password" json:"-"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Upload is a processed image stored under the uploads directory.
type Upload struct {
	Filename     string    `db:"filename" json:"filename"`
	OriginalName string    `db:"original_name" json:"originalName"`
	Width        int       `db:"width" json:"width"`
	Height       int       `db:"height" json:"height"`
	Size         int       `db:"size" json:"size"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// URL returns the public path of the uploaded file.
func (u Upload) URL() string { return "/public/uploads/" + u.Filename }

// Filter narrows a list query. Zero values mean "no constraint".
type Filter struct {
	Published *bool
	Category  string
	Status    string
	// Query is a case-insensitive substring matched against the
	// entity's text fields.
	Query string
}

// Dashboard summarizes the admin landing page.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentQuotes   []Quote        `json:"recentQuotes"`
	RecentContacts []Contact      `json:"recentContacts"`
}

// DashboardStats are the counters shown on the dashboard.
type DashboardStats struct {
	NewQuotes          int `json:"newQuotes" db:"new_quotes"`
	UnreadContacts     int `json:"unreadContacts" db:"unread_contacts"`
	TotalProjects      int `json:"totalProjects" db:"total_projects"`
	TotalBlogPosts     int `json:"totalBlogPosts" db:"total_blog_posts"`
	PublishedProjects  int `json:"publishedProjects" db:"published_projects"`
	PublishedBlogPosts int `json:"publishedBlogPosts" db:"published_blog_posts"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
