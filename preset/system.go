// Package preset ships the ready-made system settings catalog: every backed-up
// system key paired with the validator guarding its writes. Keys without a
// validator here are rejected by a RejectUnknown registry instead of being
// silently dropped from backup.
package preset

import (
	keygate "github.com/keygate/keygate"
	"github.com/keygate/keygate/dsl"
)

// Battery plugged-state flag values mirrored from the platform power manager.
const (
	pluggedAC       = 1
	pluggedUSB      = 2
	pluggedWireless = 4
)

// Display color mode ranges: the framework modes plus the vendor-reserved
// window.
const (
	colorModeNatural   = 0
	colorModeAutomatic = 3
	vendorColorModeMin = 256
	vendorColorModeMax = 511
)

// componentMaxLen bounds flattened component references stored in settings.
const componentMaxLen = 1000

// vibrationIntensity covers off(0) through high(3).
var vibrationIntensity = dsl.IntRange(0, 3)

// System builds the system settings catalog. Each call returns a fresh
// immutable catalog; callers typically build once and share it.
func System() *keygate.Catalog {
	b := keygate.NewCatalogBuilder()

	// Power and display
	b.Register(KeyStayOnWhilePluggedIn, dsl.Bitmask(pluggedAC, pluggedUSB, pluggedWireless))
	b.Register(KeyEndButtonBehavior, dsl.IntRange(0, 3))
	b.Register(KeyDimScreen, dsl.Bool())
	b.Register(KeyDisplayColorMode, dsl.AnyOf(
		dsl.IntRange(colorModeNatural, colorModeAutomatic),
		dsl.IntRange(vendorColorModeMin, vendorColorModeMax),
	))
	b.Register(KeyScreenOffTimeout, dsl.NonNegativeInt())
	b.Register(KeyScreenBrightnessForVR, dsl.IntRange(0, 255))
	b.Register(KeyScreenBrightnessMode, dsl.Bool())
	b.Register(KeyAdaptiveSleep, dsl.Bool())
	b.Register(KeyScreenAutoBrightnessAdj, dsl.FloatRange(-1, 1))
	b.Register(KeyFontScale, dsl.FloatRange(0.80, 1.3))

	// Bluetooth
	b.Register(KeyBluetoothDiscoverability, dsl.IntRange(0, 2))
	b.Register(KeyBluetoothDiscoverabilityTMO, dsl.NonNegativeInt())

	// Alarm
	b.Register(KeyNextAlarmFormatted, dsl.MaxLength(1000))

	// Sound and vibration
	b.Register(KeyModeRingerStreamsAffected, dsl.NonNegativeInt())
	b.Register(KeyMuteStreamsAffected, dsl.NonNegativeInt())
	b.Register(KeyVibrateOn, dsl.Bool())
	b.Register(KeyNotificationVibrationIntensity, vibrationIntensity)
	b.Register(KeyRingVibrationIntensity, vibrationIntensity)
	b.Register(KeyHapticFeedbackIntensity, vibrationIntensity)
	b.Register(KeyRingtone, dsl.URI())
	b.Register(KeyNotificationSound, dsl.URI())
	b.Register(KeyAlarmAlert, dsl.URI())
	b.Register(KeySoundEffectsEnabled, dsl.Bool())
	b.Register(KeyHapticFeedbackEnabled, dsl.Bool())
	b.Register(KeyPowerSoundsEnabled, dsl.Bool())
	b.Register(KeyDockSoundsEnabled, dsl.Bool())
	b.Register(KeyLockscreenSoundsEnabled, dsl.Bool())
	b.Register(KeyMasterMono, dsl.Bool())
	b.Register(KeyMasterBalance, dsl.FloatRange(-1, 1))
	b.Register(KeyNotificationsUseRingVolume, dsl.Bool())
	b.Register(KeyVibrateInSilent, dsl.Bool())
	b.Register(KeyVibrateWhenRinging, dsl.Bool())
	b.Register(KeyVibrateInputDevices, dsl.Bool())
	b.Register(KeyIncreasingRing, dsl.Bool())
	b.Register(KeyIncreasingRingStartVolume, dsl.FloatRange(0, 1))
	b.Register(KeyIncreasingRingRampUpTime, dsl.FloatRange(5, 60))
	b.Register(KeyInCallFeedbackVibrate, dsl.Bool())

	// Text input
	b.Register(KeyTextAutoReplace, dsl.Bool())
	b.Register(KeyTextAutoCaps, dsl.Bool())
	b.Register(KeyTextAutoPunctuate, dsl.Bool())
	b.Register(KeyTextShowPassword, dsl.Bool())

	// Date and time
	b.Register(KeyAutoTime, dsl.Bool())
	b.Register(KeyAutoTimeZone, dsl.Bool())
	b.Register(KeyTime1224, dsl.EnumOrAbsent("12", "24"))
	b.Register(KeyDateFormat, dsl.DateFormat())

	// Launcher and setup
	b.Register(KeyShowGTalkServiceStatus, dsl.Bool())
	b.Register(KeyWallpaperActivity, dsl.AllOf(dsl.MaxLength(componentMaxLen), dsl.Component()))
	b.Register(KeySetupWizardHasRun, dsl.Bool())
	b.Register(KeyShowWebSuggestions, dsl.Bool())
	b.Register(KeyAdvancedSettings, dsl.Bool())
	b.Register(KeyEggMode, dsl.NonNegativeInt())

	// Rotation
	b.Register(KeyAccelerometerRotation, dsl.Bool())
	b.Register(KeyAccelerometerRotationAngles, dsl.NonNegativeInt())
	b.Register(KeyUserRotation, dsl.IntRange(0, 3))
	b.Register(KeyHideRotationLockToggle, dsl.Bool())
	b.Register(KeySwapVolumeKeysOnRotation, dsl.Bool())

	// Telephony
	b.Register(KeyDTMFToneWhenDialing, dsl.Bool())
	b.Register(KeyDTMFToneTypeWhenDialing, dsl.Bool())
	b.Register(KeyHearingAid, dsl.Bool())
	b.Register(KeyTTYMode, dsl.IntRange(0, 3))
	b.Register(KeySIPReceiveCalls, dsl.Bool())
	b.Register(KeySIPCallOptions, dsl.Enum("SIP_ALWAYS", "SIP_ADDRESS_ONLY"))
	b.Register(KeySIPAlways, dsl.Bool())
	b.Register(KeySIPAddressOnly, dsl.Bool())
	b.Register(KeySIPAskMeEachTime, dsl.Bool())
	b.Register(KeyVolumeAnswerCall, dsl.Bool())

	// Pointer and debugging overlays
	b.Register(KeyPointerLocation, dsl.Bool())
	b.Register(KeyPointerSpeed, dsl.FloatRange(-7, 7))
	b.Register(KeyShowTouches, dsl.Bool())
	b.Register(KeyWindowOrientationListenerLog, dsl.Bool())

	// Lockscreen
	b.Register(KeyLockscreenDisabled, dsl.Bool())
	b.Register(KeyLockToAppEnabled, dsl.Bool())
	b.Register(KeyLockscreenPinScrambleLayout, dsl.Bool())

	// Wi-Fi
	b.Register(KeyWifiUseStaticIP, dsl.Bool())
	b.Register(KeyWifiStaticIP, dsl.LenientAddress())
	b.Register(KeyWifiStaticGateway, dsl.LenientAddress())
	b.Register(KeyWifiStaticNetmask, dsl.LenientAddress())
	b.Register(KeyWifiStaticDNS1, dsl.LenientAddress())
	b.Register(KeyWifiStaticDNS2, dsl.LenientAddress())

	// Status bar and quick settings
	b.Register(KeyShowBatteryPercent, dsl.Bool())
	b.Register(KeyStatusBarQuickQSPulldown, dsl.IntRange(0, 2))
	b.Register(KeyStatusBarClock, dsl.IntRange(0, 2))
	b.Register(KeyStatusBarAMPM, dsl.IntRange(0, 2))
	b.Register(KeyStatusBarBatteryStyle, dsl.IntRange(0, 2))
	b.Register(KeyStatusBarShowBatteryPercent, dsl.IntRange(0, 2))
	b.Register(KeyStatusBarBrightnessControl, dsl.Bool())
	b.Register(KeyQSRowsPortrait, dsl.IntRange(1, 5))
	b.Register(KeyQSRowsLandscape, dsl.IntRange(1, 2))
	b.Register(KeyQSColumnsPortrait, dsl.IntRange(1, 5))
	b.Register(KeyQSColumnsLandscape, dsl.IntRange(1, 7))
	b.Register(KeyNetworkTrafficLocation, dsl.IntRange(0, 2))
	b.Register(KeyNetworkTrafficAutohide, dsl.Bool())
	b.Register(KeyNetworkTrafficUnitType, dsl.IntRange(0, 1))

	// Navigation bar
	b.Register(KeyNavigationBarShow, dsl.Bool())
	b.Register(KeyNavigationBarModeOverlay, dsl.Any())
	b.Register(KeyNavigationBarMenuArrowKeys, dsl.Bool())
	b.Register(KeyNavigationBarHint, dsl.Bool())
	b.Register(KeyNavBarCompactLayout, dsl.Bool())
	b.Register(KeyButtonBacklightOnlyWhenPressed, dsl.Bool())

	// Hardware key actions
	b.Register(KeyHomeLongPressAction, dsl.NonNegativeInt())
	b.Register(KeyHomeDoubleTapAction, dsl.NonNegativeInt())
	b.Register(KeyMenuAction, dsl.NonNegativeInt())
	b.Register(KeyMenuLongPressAction, dsl.NonNegativeInt())
	b.Register(KeyAssistAction, dsl.NonNegativeInt())
	b.Register(KeyAssistLongPressAction, dsl.NonNegativeInt())
	b.Register(KeyAppSwitchAction, dsl.NonNegativeInt())
	b.Register(KeyAppSwitchLongPressAction, dsl.NonNegativeInt())

	// Wake gestures
	b.Register(KeyHomeWakeScreen, dsl.Bool())
	b.Register(KeyBackWakeScreen, dsl.Bool())
	b.Register(KeyMenuWakeScreen, dsl.Bool())
	b.Register(KeyAssistWakeScreen, dsl.Bool())
	b.Register(KeyAppSwitchWakeScreen, dsl.Bool())
	b.Register(KeyCameraWakeScreen, dsl.Bool())
	b.Register(KeyCameraSleepOnRelease, dsl.Bool())
	b.Register(KeyCameraLaunch, dsl.Bool())
	b.Register(KeyVolumeWakeScreen, dsl.Bool())
	b.Register(KeyVolumeKeyCursorControl, dsl.Bool())
	b.Register(KeyVolBtnMusicControls, dsl.Bool())
	b.Register(KeyDoubleTapSleepGesture, dsl.Bool())
	b.Register(KeyTorchLongPressPowerGesture, dsl.Bool())
	b.Register(KeyTorchLongPressPowerTimeout, dsl.IntRange(0, 3600))

	// Touchscreen
	b.Register(KeyTouchscreenGestureHapticFeedback, dsl.Bool())
	b.Register(KeyHighTouchSensitivityEnable, dsl.Bool())
	b.Register(KeyMediaButtonReceiver, dsl.Component())

	// Screenshots
	b.Register(KeyClickPartialScreenshot, dsl.Bool())
	b.Register(KeySwipeToScreenshot, dsl.Bool())

	// Display tuning
	b.Register(KeyDisplayCutoutHidden, dsl.Bool())
	b.Register(KeyForceFullscreenCutoutApps, dsl.Any())
	b.Register(KeyDisplayTemperatureDay, dsl.IntRange(0, 100000))
	b.Register(KeyDisplayTemperatureNight, dsl.IntRange(0, 100000))
	b.Register(KeyDisplayTemperatureMode, dsl.IntRange(0, 4))
	b.Register(KeyDisplayAutoOutdoorMode, dsl.Bool())
	b.Register(KeyDisplayReadingMode, dsl.Bool())
	b.Register(KeyDisplayCABC, dsl.Bool())
	b.Register(KeyDisplayColorEnhance, dsl.Bool())
	b.Register(KeyDisplayAutoContrast, dsl.Bool())
	b.Register(KeyDisplayColorAdjustment, dsl.OrAbsent(dsl.Fields(" ",
		dsl.FloatRange(0, 1), dsl.FloatRange(0, 1), dsl.FloatRange(0, 1))))
	b.Register(KeyDisplayPictureAdjustment, dsl.PairList(",", ":"))
	b.Register(KeyLiveDisplayHinted, dsl.IntRange(-3, 1))

	// Notification light
	b.Register(KeyNotificationLightPulse, dsl.Bool())

	// Misc
	b.Register(KeyPocketJudge, dsl.Bool())

	return b.Build()
}
