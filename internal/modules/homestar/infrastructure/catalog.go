package infrastructure

import (
	"fmt"
	"strings"
	"time"

	"github.com/sglre6355/homestar/internal/modules/homestar/domain"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys that are not message kinds.
const (
	keyDurationSeconds  = "duration-seconds"
	keyDurationMinutes  = "duration-minutes"
	keyDestinationHome  = "destination-home"
	keyDestinationSpawn = "destination-spawn"
	keyItemName         = "item-name"
)

// SupportedLanguages lists the languages the catalog has messages for.
// The first entry is the fallback.
var SupportedLanguages = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// Catalog renders localized player messages.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog creates a Catalog for the best match of the requested language.
// Unknown or malformed languages fall back to English.
func NewCatalog(lang string) (*Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(SupportedLanguages[0]))
	for tag, entries := range translations {
		for key, text := range entries.strings {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("failed to register %s message %q: %w", tag, key, err)
			}
		}
		for key, msg := range entries.plurals {
			if err := builder.Set(tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register %s message %q: %w", tag, key, err)
			}
		}
	}

	requested, err := language.Parse(lang)
	if err != nil {
		requested = SupportedLanguages[0]
	}
	_, index, _ := languageMatcher.Match(requested)
	tag := SupportedLanguages[index]

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Language returns the language messages are rendered in.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Render returns the text of the message with placeholders substituted.
func (c *Catalog) Render(kind domain.MessageKind, subs domain.Substitutions) string {
	text := c.printer.Sprintf(string(kind))
	if len(subs) == 0 {
		return text
	}

	pairs := make([]string, 0, 2*len(subs)+2)
	for name, value := range subs {
		pairs = append(pairs, "{"+name+"}", c.format(value))
	}
	if quantity, ok := subs[domain.SubstQuantity].(int); ok {
		pairs = append(pairs, "{item}", c.printer.Sprintf(keyItemName, quantity))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// FormatDuration renders a duration in whole minutes and seconds.
func (c *Catalog) FormatDuration(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds < 60 {
		return c.printer.Sprintf(keyDurationSeconds, seconds)
	}

	minutes := c.printer.Sprintf(keyDurationMinutes, seconds/60)
	if seconds%60 == 0 {
		return minutes
	}
	return minutes + " " + c.printer.Sprintf(keyDurationSeconds, seconds%60)
}

// Destination returns the localized name of a destination kind.
func (c *Catalog) Destination(kind domain.DestinationKind) string {
	if kind == domain.DestinationSpawn {
		return c.printer.Sprintf(keyDestinationSpawn)
	}
	return c.printer.Sprintf(keyDestinationHome)
}

func (c *Catalog) format(value any) string {
	switch v := value.(type) {
	case time.Duration:
		return c.FormatDuration(v)
	case domain.DestinationKind:
		return c.Destination(v)
	case string:
		return v
	default:
		return c.printer.Sprint(v)
	}
}

type translation struct {
	strings map[string]string
	plurals map[string]catalog.Message
}

var translations = map[language.Tag]translation{
	language.AmericanEnglish: {
		strings: map[string]string{
			string(domain.MessageTeleportCooldown):             "You need to wait {remaining} before using a HomeStar again.",
			string(domain.MessageTeleportWarmup):               "Teleporting to {destination} in {duration}.",
			string(domain.MessageTeleportSuccess):              "Teleported to {destination}.",
			string(domain.MessageTeleportFailNoBedspawn):       "You do not have a bed spawn.",
			string(domain.MessageTeleportFailMinDistance):      "You are too close to {destination} to use a HomeStar.",
			string(domain.MessageTeleportFailWorldDisabled):    "HomeStars do not work in {world}.",
			string(domain.MessageTeleportFailShiftClick):       "Sneak while using the HomeStar to teleport.",
			string(domain.MessageTeleportCancelledInteraction): "Teleport cancelled: you interacted with a block.",
			string(domain.MessageTeleportCancelledDamage):      "Teleport cancelled: you took damage.",
			string(domain.MessageTeleportCancelledMovement):    "Teleport cancelled: you moved.",
			string(domain.MessageTeleportCancelledNoItem):      "Teleport cancelled: the HomeStar is no longer in your inventory.",
			string(domain.MessageHomeSet):                      "Your HomeStar now leads to this bed.",
			string(domain.MessageCommandGive):                  "Gave {item} to {player}.",
			string(domain.MessageCommandDestroy):               "Destroyed {item}.",
			string(domain.MessageCommandFailNoItem):            "You are not holding a HomeStar.",
			string(domain.MessageCommandFailPlayerNotFound):    "Player {player} is not online.",
			string(domain.MessageCommandStatus):                "Warmup: {duration}, cooldown left: {remaining}.",
			string(domain.MessageCommandHelp):                  "/homestar status [player]: show warmup and cooldown\n/homestar destroy: destroy the HomeStars in your hand\n/homestar help: show this help",
			string(domain.MessageCommandHelpGive):              "/homestar give <player> [amount]: give HomeStars",
			keyDestinationHome:                                 "home",
			keyDestinationSpawn:                                "spawn",
		},
		plurals: map[string]catalog.Message{
			keyDurationSeconds: plural.Selectf(1, "%d",
				plural.One, "%d second",
				plural.Other, "%d seconds",
			),
			keyDurationMinutes: plural.Selectf(1, "%d",
				plural.One, "%d minute",
				plural.Other, "%d minutes",
			),
			keyItemName: plural.Selectf(1, "%d",
				plural.One, "%d HomeStar",
				plural.Other, "%d HomeStars",
			),
		},
	},
	language.German: {
		strings: map[string]string{
			string(domain.MessageTeleportCooldown):             "Du musst noch {remaining} warten, bevor du wieder einen HomeStar benutzen kannst.",
			string(domain.MessageTeleportWarmup):               "Teleport zu {destination} in {duration}.",
			string(domain.MessageTeleportSuccess):              "Zu {destination} teleportiert.",
			string(domain.MessageTeleportFailNoBedspawn):       "Du hast keinen Bett-Spawnpunkt.",
			string(domain.MessageTeleportFailMinDistance):      "Du bist zu nah an {destination}, um einen HomeStar zu benutzen.",
			string(domain.MessageTeleportFailWorldDisabled):    "HomeStars funktionieren in {world} nicht.",
			string(domain.MessageTeleportFailShiftClick):       "Schleiche, während du den HomeStar benutzt.",
			string(domain.MessageTeleportCancelledInteraction): "Teleport abgebrochen: du hast mit einem Block interagiert.",
			string(domain.MessageTeleportCancelledDamage):      "Teleport abgebrochen: du hast Schaden erlitten.",
			string(domain.MessageTeleportCancelledMovement):    "Teleport abgebrochen: du hast dich bewegt.",
			string(domain.MessageTeleportCancelledNoItem):      "Teleport abgebrochen: der HomeStar ist nicht mehr in deinem Inventar.",
			string(domain.MessageHomeSet):                      "Dein HomeStar führt jetzt zu diesem Bett.",
			string(domain.MessageCommandGive):                  "{item} an {player} gegeben.",
			string(domain.MessageCommandDestroy):               "{item} zerstört.",
			string(domain.MessageCommandFailNoItem):            "Du hältst keinen HomeStar.",
			string(domain.MessageCommandFailPlayerNotFound):    "Spieler {player} ist nicht online.",
			string(domain.MessageCommandStatus):                "Aufwärmzeit: {duration}, verbleibende Abklingzeit: {remaining}.",
			string(domain.MessageCommandHelp):                  "/homestar status [Spieler]: Aufwärm- und Abklingzeit anzeigen\n/homestar destroy: HomeStars in deiner Hand zerstören\n/homestar help: diese Hilfe anzeigen",
			string(domain.MessageCommandHelpGive):              "/homestar give <Spieler> [Anzahl]: HomeStars geben",
			keyDestinationHome:                                 "Zuhause",
			keyDestinationSpawn:                                "Spawn",
		},
		plurals: map[string]catalog.Message{
			keyDurationSeconds: plural.Selectf(1, "%d",
				plural.One, "%d Sekunde",
				plural.Other, "%d Sekunden",
			),
			keyDurationMinutes: plural.Selectf(1, "%d",
				plural.One, "%d Minute",
				plural.Other, "%d Minuten",
			),
			keyItemName: plural.Selectf(1, "%d",
				plural.One, "%d HomeStar",
				plural.Other, "%d HomeStars",
			),
		},
	},
}
