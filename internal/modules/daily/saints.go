package daily

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/scrape"
)

const (
	saintBioMinLen = 50
	saintBioMaxLen = 300
)

// weekdaySaints is the commemoration rotation used when the calendar has
// no celebration of its own. Indexed by time.Weekday (Sunday = 0).
var weekdaySaints = [7]models.Saint{
	{
		Name: "Saint Joseph",
		Bio:  "Foster father of Jesus and patron of workers, fathers, and the universal Church. He exemplifies quiet strength, faithfulness, and trust in God's plan.",
	},
	{
		Name: "Saint Michael the Archangel",
		Bio:  "Prince of the heavenly host and defender against evil. He leads God's army against Satan and protects the Church.",
	},
	{
		Name: "Saint John the Baptist",
		Bio:  "Forerunner of Christ who baptized Jesus in the Jordan River. He prepared the way for the Lord's ministry.",
	},
	{
		Name: "Saint Peter the Apostle",
		Bio:  "First Pope and leader of the apostles, keeper of the keys to heaven. He was chosen by Christ to lead the early Church.",
	},
	{
		Name: "Saint Paul the Apostle",
		Bio:  "Apostle to the Gentiles and great missionary of the early Church. His letters form much of the New Testament.",
	},
	{
		Name: "Saint Mary Magdalene",
		Bio:  "First witness to the Resurrection and apostle to the apostles. She was a devoted follower of Jesus.",
	},
	{
		Name: "Blessed Virgin Mary",
		Bio:  "Mother of God and our spiritual mother, full of grace. She is the perfect model of discipleship and faith.",
	},
}

// WeekdaySaint returns the rotation commemoration for a calendar day.
func WeekdaySaint(day time.Time) models.Saint {
	saint := weekdaySaints[day.Weekday()]
	saint.Type = "Commemoration"
	saint.Rank = "Commemoration"
	return saint
}

var saintNamePrefix = regexp.MustCompile(`(?i)^(Saint|St\.)\s+`)

// BioFetcher scrapes short saint biographies from an external directory.
type BioFetcher struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	bioSelectors []scrape.Candidate
}

func NewBioFetcher(baseURL string, client *http.Client, logger *zap.Logger) *BioFetcher {
	return &BioFetcher{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
		bioSelectors: []scrape.Candidate{
			{Selector: ".saint-bio", MinLen: saintBioMinLen},
			{Selector: ".content", MinLen: saintBioMinLen},
			{Selector: ".description", MinLen: saintBioMinLen},
		},
	}
}

// FetchBio returns a short biography for the named saint. Scrape failures
// degrade to a generic bio, never an error: a missing bio must not sink
// the whole day's content.
func (f *BioFetcher) FetchBio(ctx context.Context, saintName string) string {
	searchName := strings.TrimSpace(saintNamePrefix.ReplaceAllString(saintName, ""))
	bioURL := fmt.Sprintf("%s?saint_id=%s", f.baseURL, url.QueryEscape(searchName))

	doc, err := scrape.FetchDocument(ctx, f.client, bioURL)
	if err != nil {
		f.logger.Debug("saint bio fetch failed",
			zap.String("saint", saintName), zap.Error(err))
		return fmt.Sprintf("%s is commemorated today in the liturgical calendar as a model of Christian virtue and holiness.", saintName)
	}

	if bio := scrape.ExtractFirst(doc, f.bioSelectors); bio != "" {
		return scrape.Truncate(bio, saintBioMaxLen)
	}

	return fmt.Sprintf("%s lived a life of heroic virtue and holiness, serving God and the Church with great devotion. This saint is remembered for their faith, charity, and dedication to following Christ. We ask for their intercession as we strive to imitate their example of Christian living.", saintName)
}
