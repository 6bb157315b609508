package fixture

// Values every builder starts from. Tests compare against these when they
// do not override a field.
const (
	DefaultMessageID           = 1
	DefaultIsTopicMessage      = false
	DefaultIsAutomaticForward  = false
	DefaultHasProtectedContent = false
	DefaultHasMediaSpoiler     = false

	DefaultUserID        int64 = 12345678
	DefaultUserFirstName       = "First"
	DefaultUserLastName        = "Last"
	DefaultUsername            = "test_user"
	DefaultLanguageCode        = "en"

	DefaultGroupID      int64 = -12345678
	DefaultGroupTitle         = "Group"
	DefaultSupergroupID int64 = -1001234567890
	DefaultChannelID    int64 = -1009876543210
	DefaultChannelTitle       = "Channel"
	DefaultChannelName        = "test_channel"

	DefaultText = "text"

	DefaultFileUniqueID = "file_unique_id"

	DefaultPhotoFileID   = "AgACAgIAAxkBAAIBZmZ8o2Yx9HUAAZV9AAF3zq3u8T0AAg"
	DefaultPhotoWidth    = 90
	DefaultPhotoHeight   = 51
	DefaultPhotoFileSize = 1101

	DefaultVideoFileID   = "BAACAgIAAxkBAAIBaGZ8o3kAAWyZ7Q8AAX6ux3Gk1iMAAg"
	DefaultVideoWidth    = 640
	DefaultVideoHeight   = 480
	DefaultVideoDuration = 52
	DefaultVideoFileSize = 1381334
	DefaultVideoMimeType = "video/mp4"

	DefaultAnimationFileID   = "file_id"
	DefaultAnimationWidth    = 50
	DefaultAnimationHeight   = 50
	DefaultAnimationDuration = 50
	DefaultAnimationFileSize = 50

	DefaultAudioFileID   = "CQADAgADbQEAAsnrIUpNoRRNsH7_hAI"
	DefaultAudioDuration = 236
	DefaultAudioFileSize = 9507774

	DefaultVoiceFileID   = "AwADawAgADADy_JxS2gopIVIIxlhAg"
	DefaultVoiceDuration = 1
	DefaultVoiceFileSize = 4321

	DefaultDocumentFileID   = "BQADAgADpgADy_JxS66XQTBRHFleAg"
	DefaultDocumentFileSize = 21331

	DefaultStickerFileID   = "AAbbCCddEEffGGhh1234567890"
	DefaultStickerWidth    = 512
	DefaultStickerHeight   = 512
	DefaultStickerFileSize = 12345

	DefaultVideoNoteFileID   = "file_id"
	DefaultVideoNoteLength   = 50
	DefaultVideoNoteDuration = 50
	DefaultVideoNoteFileSize = 50

	DefaultPhoneNumber      = "+123456789"
	DefaultContactFirstName = "First"

	DefaultLatitude  = 50.0
	DefaultLongitude = 30.0

	DefaultVenueTitle   = "Title"
	DefaultVenueAddress = "Address"

	DefaultGameTitle       = "Title"
	DefaultGameDescription = "Description"

	DefaultPollID                    = "12345"
	DefaultPollQuestion              = "Question"
	DefaultPollIsClosed              = true
	DefaultPollIsAnonymous           = true
	DefaultPollTotalVoterCount       = 50
	DefaultPollAllowsMultipleAnswers = true

	DefaultDiceValue = 1
	DefaultDiceEmoji = "🎲"

	DefaultMigrateToChatID   int64 = 1
	DefaultMigrateFromChatID int64 = 1

	DefaultCallbackQueryID = "3405986230938457"
	DefaultChatInstance    = "-1134514234953"
	DefaultCallbackData    = "data"
)
