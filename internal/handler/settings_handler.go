package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sensen/backend/internal/database"
	"sensen/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsFields are the document paths a PUT /api/settings payload may set.
// Anything else in the payload is dropped, mirroring a strict schema.
var settingsFields = map[string]bool{
	"siteName":                     true,
	"logoUrl":                      true,
	"iconUrl":                      true,
	"primaryColor":                 true,
	"secondaryColor":               true,
	"fontFamily":                   true,
	"generalTextColor":             true,
	"pageBackgroundColor":          true,
	"generalBackgroundColor":       true,
	"headerBackgroundColor":        true,
	"footerBackgroundColor":        true,
	"homepageTitle":                true,
	"catalogPageTitle":             true,
	"homepageFeaturedSectionTitle": true,
	"homepageAboutUsTitle":         true,
	"homepageAboutUsText":          true,
	"aboutUsImageUrl":              true,
	"mailingListImageUrl":          true,
	"homepageMailingListTitle":     true,
	"socialLinks":                  true,
}

// settingsPatch filters a raw payload down to known settings fields and
// validates the ones that have structure. The result is used with $set, so
// fields absent from the payload are preserved: a partial client payload
// never wipes the rest of the document.
func settingsPatch(payload map[string]interface{}) (bson.M, error) {
	patch := bson.M{}
	for key, value := range payload {
		if !settingsFields[key] {
			continue
		}
		if key == "socialLinks" {
			links, err := parseSocialLinks(value)
			if err != nil {
				return nil, err
			}
			patch[key] = links
			continue
		}
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string", key)
		}
		patch[key] = str
	}
	return patch, nil
}

func parseSocialLinks(value interface{}) ([]models.SocialLink, error) {
	raw, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("socialLinks must be an array")
	}
	links := make([]models.SocialLink, 0, len(raw))
	for i, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("socialLinks[%d] must be an object", i)
		}
		name, _ := fields["name"].(string)
		url, _ := fields["url"].(string)
		icon, _ := fields["icon"].(string)
		if name == "" || url == "" || icon == "" {
			return nil, fmt.Errorf("socialLinks[%d] requires name, url and icon", i)
		}
		links = append(links, models.SocialLink{Name: name, URL: url, Icon: icon})
	}
	return links, nil
}

// GetSettings godoc
// @Summary      Get site settings
// @Description  Returns the settings singleton, creating it with defaults on first read.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.SiteSettings
// @Failure      500  {object}  MessageResponse
// @Router       /settings [get]
func GetSettings(c *gin.Context) {
	ctx := context.Background()
	collection := database.DB.Collection("settings")

	var settings models.SiteSettings
	err := collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = models.DefaultSettings()
		result, insertErr := collection.InsertOne(ctx, settings)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching settings", "error": insertErr.Error()})
			return
		}
		settings.ID = result.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusOK, settings)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching settings", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update site settings
// @Description  Merge-patches the settings singleton; fields omitted from the payload keep their values.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200  {object}  models.SiteSettings
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /settings [put]
func UpdateSettings(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	patch, err := settingsPatch(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	patch["updatedAt"] = time.Now().UTC()

	// The empty filter targets the singleton; upsert covers the case where
	// an admin writes before anything was ever read.
	var updated models.SiteSettings
	err = database.DB.Collection("settings").
		FindOneAndUpdate(context.Background(),
			bson.M{},
			bson.M{"$set": patch},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)).
		Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating settings", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}
