package content

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gokler/sitecms/model"
)

// SeedResult counts the records Seed created. Records that already existed
// are left untouched and not counted.
type SeedResult struct {
	Posts        int
	Projects     int
	Testimonials int
	Seo          int
	Settings     bool
}

// Seed fills an empty site with demo content. Posts and projects are
// matched by slug, testimonials by name and SEO rows by page, so running
// it again only adds what is missing.
func (s *Service) Seed(ctx context.Context, who Caller) (SeedResult, error) {
	var res SeedResult
	if err := who.require(); err != nil {
		return res, err
	}

	for _, post := range seedPosts {
		created, err := seedOnce(ctx, post["slug"].(string), func(ctx context.Context, slug string) error {
			_, err := s.GetBlogPost(ctx, who, slug)
			return err
		}, func(ctx context.Context) error {
			_, err := s.CreateBlogPost(ctx, who, FieldsPatch(post))
			return err
		})
		if err != nil {
			return res, fmt.Errorf("seed post %s: %w", post["slug"], err)
		}
		if created {
			res.Posts++
		}
	}

	for _, pr := range seedProjects {
		created, err := seedOnce(ctx, pr["slug"].(string), func(ctx context.Context, slug string) error {
			_, err := s.GetProject(ctx, who, slug)
			return err
		}, func(ctx context.Context) error {
			_, err := s.CreateProject(ctx, who, FieldsPatch(pr))
			return err
		})
		if err != nil {
			return res, fmt.Errorf("seed project %s: %w", pr["slug"], err)
		}
		if created {
			res.Projects++
		}
	}

	existing, err := s.ListTestimonials(ctx, who, model.Filter{})
	if err != nil {
		return res, err
	}
	for _, t := range seedTestimonials {
		name := t["name"].(string)
		if slices.ContainsFunc(existing, func(e model.Testimonial) bool { return e.Name == name }) {
			continue
		}
		if _, err := s.CreateTestimonial(ctx, who, FieldsPatch(t)); err != nil {
			return res, fmt.Errorf("seed testimonial %s: %w", name, err)
		}
		res.Testimonials++
	}

	for _, seo := range seedSeo {
		created, err := seedOnce(ctx, seo["page"].(string), func(ctx context.Context, page string) error {
			_, err := s.GetSeo(ctx, page)
			return err
		}, func(ctx context.Context) error {
			_, err := s.SaveSeo(ctx, who, FieldsPatch(seo))
			return err
		})
		if err != nil {
			return res, fmt.Errorf("seed seo %s: %w", seo["page"], err)
		}
		if created {
			res.Seo++
		}
	}

	switch _, err := s.GetSettings(ctx); {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		if _, err := s.SaveSettings(ctx, who, FieldsPatch(seedSettings)); err != nil {
			return res, fmt.Errorf("seed settings: %w", err)
		}
		res.Settings = true
	default:
		return res, err
	}
	return res, nil
}

// seedOnce runs create when lookup reports key as not found.
func seedOnce(ctx context.Context, key string, lookup func(context.Context, string) error, create func(context.Context) error) (bool, error) {
	err := lookup(ctx, key)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrNotFound):
		return true, create(ctx)
	default:
		return false, err
	}
}

var seedPosts = []map[string]any{
	{
		"slug":    "2024-insaat-trendleri",
		"title":   "2024 İnşaat Sektörü Trendleri",
		"excerpt": "Sürdürülebilir yapılar, akıllı bina teknolojileri ve modüler inşaat yöntemleri 2024'ün öne çıkan trendleri arasında.",
		"content": `## 2024'te İnşaat Sektörünü Şekillendirecek Trendler

İnşaat sektörü, teknolojik gelişmeler ve değişen müşteri beklentileri doğrultusunda hızla dönüşüyor.

### 1. Sürdürülebilir Yapılar
Çevre bilincinin artmasıyla birlikte, yeşil bina sertifikaları ve enerji verimli tasarımlar artık bir tercih değil, zorunluluk haline geldi.

### 2. Akıllı Bina Teknolojileri
IoT sensörleri, otomasyon sistemleri ve yapay zeka destekli bina yönetim sistemleri, binaları daha verimli hale getiriyor.

### 3. Modüler ve Prefabrik İnşaat
Fabrikada üretilen modüller, şantiyede monte edilerek inşaat süresini önemli ölçüde kısaltıyor.`,
		"image":     "https://images.unsplash.com/photo-1504307651254-35680f356dfd?q=80&w=1170",
		"author":    "Mehmet Gökler",
		"category":  "Sektör",
		"readTime":  "5 dk",
		"published": true,
	},
	{
		"slug":    "enerji-verimli-binalar",
		"title":   "Enerji Verimli Bina Tasarımı",
		"excerpt": "Enerji maliyetlerini düşüren ve çevreye duyarlı bina tasarım prensipleri hakkında bilmeniz gerekenler.",
		"content": `## Enerji Verimli Bina Tasarımının Temelleri

Artan enerji maliyetleri ve çevresel kaygılar, enerji verimli bina tasarımını her zamankinden daha önemli hale getirdi.

### Pasif Tasarım İlkeleri
- **Güneş Enerjisinden Yararlanma**: Güneş ışığını maksimum düzeyde kullanan pencere konumlandırması
- **Doğal Havalandırma**: Mekanik sistemlere olan bağımlılığı azaltan tasarım
- **Isı Yalıtımı**: Yüksek kaliteli yalıtım malzemeleri ile enerji kaybının önlenmesi`,
		"image":     "https://images.unsplash.com/photo-1518005020951-eccb494ad742?q=80&w=1165",
		"author":    "Ayşe Yılmaz",
		"category":  "Tasarım",
		"readTime":  "4 dk",
		"published": true,
	},
}

var seedProjects = []map[string]any{
	{
		"slug":     "park-rezidans",
		"title":    "Park Rezidans",
		"category": "Konut",
		"location": "İstanbul, Beşiktaş",
		"year":     "2023",
		"area":     "25.000 m²",
		"client":   "Park Gayrimenkul A.Ş.",
		"status":   "completed",
		"image":    "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?q=80&w=1035",
		"gallery": []string{
			"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?q=80&w=1035",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=1170",
		},
		"description": "İstanbul Beşiktaş'ın kalbinde, park manzaralı lüks rezidans projesi. 40 daireden oluşan proje, modern mimari anlayışı ve üstün yaşam kalitesi sunmaktadır.",
		"features":    []string{"40 Lüks Daire", "Açık & Kapalı Havuz", "Fitness Center", "24 Saat Güvenlik"},
		"tags":        []string{"Lüks Konut", "40 Daire", "Havuzlu"},
		"published":   true,
	},
	{
		"slug":     "merkez-plaza",
		"title":    "Merkez Plaza",
		"category": "Ticari",
		"location": "Ankara, Çankaya",
		"year":     "2022",
		"area":     "45.000 m²",
		"client":   "Merkez Holding",
		"status":   "completed",
		"image":    "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?q=80&w=1170",
		"gallery": []string{
			"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?q=80&w=1170",
			"https://images.unsplash.com/photo-1554435493-93422e8220c8?q=80&w=1036",
		},
		"description": "Ankara'nın prestijli iş merkezinde A+ sınıfı ofis binası. LEED Gold sertifikalı, akıllı bina teknolojileri ile donatılmıştır.",
		"features":    []string{"25 Katlı Ofis Kulesi", "LEED Gold Sertifika", "Helipad", "Konferans Merkezi"},
		"tags":        []string{"Ofis", "A+ Bina", "Akıllı Bina"},
		"published":   true,
	},
}

var seedTestimonials = []map[string]any{
	{
		"name":      "Ahmet Yılmaz",
		"role":      "Proje Sahibi",
		"company":   "Yılmaz Holding",
		"content":   "Gökler İnşaat ile çalışmak gerçekten profesyonel bir deneyimdi. Projemiz zamanında ve bütçe dahilinde tamamlandı. Kesinlikle tavsiye ediyorum.",
		"rating":    5,
		"published": true,
	},
	{
		"name":      "Fatma Demir",
		"role":      "Genel Müdür",
		"company":   "Demir Gayrimenkul",
		"content":   "Kalite standartları ve iletişimleri mükemmel. Her aşamada bilgilendirildik ve sonuç beklentilerimizin üzerindeydi.",
		"rating":    5,
		"published": true,
	},
	{
		"name":      "Mehmet Kaya",
		"role":      "Ev Sahibi",
		"content":   "Villa projemizde gösterdikleri özen ve profesyonellik için teşekkür ederiz. Hayalimizdeki evi inşa ettiler.",
		"rating":    5,
		"published": true,
	},
}

var seedSeo = []map[string]any{
	{
		"page":        "home",
		"title":       "Gökler İnşaat | Güvenilir İnşaat Çözümleri",
		"description": "25 yılı aşkın tecrübemizle konut, ticari ve endüstriyel projelerde kaliteli inşaat çözümleri sunuyoruz.",
		"keywords":    "inşaat, müteahhit, konut projeleri, ticari inşaat",
	},
	{
		"page":        "about",
		"title":       "Hakkımızda | Gökler İnşaat",
		"description": "Gökler İnşaat olarak 25 yılı aşkın tecrübemizle sektörde öncü konumdayız.",
		"keywords":    "hakkımızda, şirket profili, deneyim",
	},
	{
		"page":        "projects",
		"title":       "Projelerimiz | Gökler İnşaat",
		"description": "Tamamladığımız ve devam eden projelerimizi inceleyin.",
		"keywords":    "projeler, konut, ticari, endüstriyel",
	},
}

var seedSettings = map[string]any{
	"companyName": "Gökler İnşaat",
	"phone":       "+90 537 656 65 92",
	"email":       "goklerinsaat@gmail.com",
	"address":     "Konya",
	"facebook":    "https://www.facebook.com/people/G%C3%B6kler-%C4%B0n%C5%9Faat/61581379206252/",
	"instagram":   "https://www.instagram.com/goklerinsaatt/",
}
