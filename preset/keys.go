package preset

// Key names of the shipped system settings catalog, grouped by concern.
const (
	KeyStayOnWhilePluggedIn        = "stay_on_while_plugged_in"
	KeyEndButtonBehavior           = "end_button_behavior"
	KeyWifiUseStaticIP             = "wifi_use_static_ip"
	KeyBluetoothDiscoverability    = "bluetooth_discoverability"
	KeyBluetoothDiscoverabilityTMO = "bluetooth_discoverability_timeout"
	KeyNextAlarmFormatted          = "next_alarm_formatted"
	KeyFontScale                   = "font_scale"
	KeyDimScreen                   = "dim_screen"
	KeyScreenOffTimeout            = "screen_off_timeout"
	KeyScreenBrightnessForVR       = "screen_brightness_for_vr"
	KeyScreenBrightnessMode        = "screen_brightness_mode"
	KeyAdaptiveSleep               = "adaptive_sleep"
	KeyScreenAutoBrightnessAdj     = "screen_auto_brightness_adj"

	// Sound and vibration
	KeyModeRingerStreamsAffected      = "mode_ringer_streams_affected"
	KeyMuteStreamsAffected            = "mute_streams_affected"
	KeyVibrateOn                      = "vibrate_on"
	KeyNotificationVibrationIntensity = "notification_vibration_intensity"
	KeyRingVibrationIntensity         = "ring_vibration_intensity"
	KeyHapticFeedbackIntensity        = "haptic_feedback_intensity"
	KeyRingtone                       = "ringtone"
	KeyNotificationSound              = "notification_sound"
	KeyAlarmAlert                     = "alarm_alert"
	KeySoundEffectsEnabled            = "sound_effects_enabled"
	KeyHapticFeedbackEnabled          = "haptic_feedback_enabled"
	KeyPowerSoundsEnabled             = "power_sounds_enabled"
	KeyDockSoundsEnabled              = "dock_sounds_enabled"
	KeyLockscreenSoundsEnabled        = "lockscreen_sounds_enabled"
	KeyMasterMono                     = "master_mono"
	KeyMasterBalance                  = "master_balance"
	KeyNotificationsUseRingVolume     = "notifications_use_ring_volume"
	KeyVibrateInSilent                = "vibrate_in_silent"
	KeyVibrateWhenRinging             = "vibrate_when_ringing"
	KeyVibrateInputDevices            = "vibrate_input_devices"
	KeyIncreasingRing                 = "increasing_ring"
	KeyIncreasingRingStartVolume      = "increasing_ring_start_vol"
	KeyIncreasingRingRampUpTime       = "increasing_ring_ramp_up_time"
	KeyInCallFeedbackVibrate          = "incall_feedback_vibrate"

	// Text input
	KeyTextAutoReplace   = "auto_replace"
	KeyTextAutoCaps      = "auto_caps"
	KeyTextAutoPunctuate = "auto_punctuate"
	KeyTextShowPassword  = "show_password"

	// Date and time
	KeyAutoTime     = "auto_time"
	KeyAutoTimeZone = "auto_time_zone"
	KeyTime1224     = "time_12_24"
	KeyDateFormat   = "date_format"

	// Launcher and setup
	KeyShowGTalkServiceStatus = "show_gtalk_service_status"
	KeyWallpaperActivity      = "wallpaper_activity"
	KeySetupWizardHasRun      = "setup_wizard_has_run"
	KeyShowWebSuggestions     = "show_web_suggestions"
	KeyAdvancedSettings       = "advanced_settings"
	KeyEggMode                = "egg_mode"

	// Rotation
	KeyAccelerometerRotation       = "accelerometer_rotation"
	KeyAccelerometerRotationAngles = "accelerometer_rotation_angles"
	KeyUserRotation                = "user_rotation"
	KeyHideRotationLockToggle      = "hide_rotation_lock_toggle_for_accessibility"
	KeySwapVolumeKeysOnRotation    = "swap_volume_keys_on_rotation"

	// Telephony
	KeyDTMFToneWhenDialing     = "dtmf_tone"
	KeyDTMFToneTypeWhenDialing = "dtmf_tone_type"
	KeyHearingAid              = "hearing_aid"
	KeyTTYMode                 = "tty_mode"
	KeySIPReceiveCalls         = "sip_receive_calls"
	KeySIPCallOptions          = "sip_call_options"
	KeySIPAlways               = "sip_always"
	KeySIPAddressOnly          = "sip_address_only"
	KeySIPAskMeEachTime        = "sip_ask_me_each_time"
	KeyVolumeAnswerCall        = "volume_answer_call"

	// Pointer and debugging overlays
	KeyPointerLocation              = "pointer_location"
	KeyPointerSpeed                 = "pointer_speed"
	KeyShowTouches                  = "show_touches"
	KeyWindowOrientationListenerLog = "window_orientation_listener_log"

	// Lockscreen
	KeyLockscreenDisabled          = "lockscreen.disabled"
	KeyLockToAppEnabled            = "lock_to_app_enabled"
	KeyLockscreenPinScrambleLayout = "lockscreen_scramble_pin_layout"

	// Wi-Fi static configuration
	KeyWifiStaticIP      = "wifi_static_ip"
	KeyWifiStaticGateway = "wifi_static_gateway"
	KeyWifiStaticNetmask = "wifi_static_netmask"
	KeyWifiStaticDNS1    = "wifi_static_dns1"
	KeyWifiStaticDNS2    = "wifi_static_dns2"

	// Status bar and quick settings
	KeyShowBatteryPercent          = "show_battery_percent"
	KeyStatusBarQuickQSPulldown    = "qs_quick_pulldown"
	KeyStatusBarClock              = "status_bar_clock"
	KeyStatusBarAMPM               = "status_bar_am_pm"
	KeyStatusBarBatteryStyle       = "status_bar_battery_style"
	KeyStatusBarShowBatteryPercent = "status_bar_show_battery_percent"
	KeyStatusBarBrightnessControl  = "status_bar_brightness_control"
	KeyQSRowsPortrait              = "qs_rows_portrait"
	KeyQSRowsLandscape             = "qs_rows_landscape"
	KeyQSColumnsPortrait           = "qs_columns_portrait"
	KeyQSColumnsLandscape          = "qs_columns_landscape"
	KeyNetworkTrafficLocation      = "network_traffic_location"
	KeyNetworkTrafficAutohide      = "network_traffic_autohide"
	KeyNetworkTrafficUnitType      = "network_traffic_unit_type"

	// Navigation bar
	KeyNavigationBarShow              = "navigation_bar_show"
	KeyNavigationBarModeOverlay       = "navigation_bar_mode_overlay"
	KeyNavigationBarMenuArrowKeys     = "navigation_bar_menu_arrow_keys"
	KeyNavigationBarHint              = "navigation_bar_hint"
	KeyNavBarCompactLayout            = "nav_bar_compact_layout"
	KeyButtonBacklightOnlyWhenPressed = "button_backlight_only_when_pressed"

	// Hardware key actions
	KeyHomeLongPressAction      = "key_home_long_press_action"
	KeyHomeDoubleTapAction      = "key_home_double_tap_action"
	KeyMenuAction               = "key_menu_action"
	KeyMenuLongPressAction      = "key_menu_long_press_action"
	KeyAssistAction             = "key_assist_action"
	KeyAssistLongPressAction    = "key_assist_long_press_action"
	KeyAppSwitchAction          = "key_app_switch_action"
	KeyAppSwitchLongPressAction = "key_app_switch_long_press_action"

	// Wake gestures
	KeyHomeWakeScreen             = "home_wake_screen"
	KeyBackWakeScreen             = "back_wake_screen"
	KeyMenuWakeScreen             = "menu_wake_screen"
	KeyAssistWakeScreen           = "assist_wake_screen"
	KeyAppSwitchWakeScreen        = "app_switch_wake_screen"
	KeyCameraWakeScreen           = "camera_wake_screen"
	KeyCameraSleepOnRelease       = "camera_sleep_on_release"
	KeyCameraLaunch               = "camera_launch"
	KeyVolumeWakeScreen           = "volume_wake_screen"
	KeyVolumeKeyCursorControl     = "volume_key_cursor_control"
	KeyVolBtnMusicControls        = "volbtn_music_controls"
	KeyDoubleTapSleepGesture      = "double_tap_sleep_gesture"
	KeyTorchLongPressPowerGesture = "torch_long_press_power_gesture"
	KeyTorchLongPressPowerTimeout = "torch_long_press_power_timeout"

	// Touchscreen
	KeyTouchscreenGestureHapticFeedback = "touchscreen_gesture_haptic_feedback"
	KeyHighTouchSensitivityEnable       = "high_touch_sensitivity_enable"
	KeyMediaButtonReceiver              = "media_button_receiver"

	// Screenshots
	KeyClickPartialScreenshot = "click_partial_screenshot"
	KeySwipeToScreenshot      = "swipe_to_screenshot"

	// Display
	KeyDisplayColorMode          = "display_color_mode"
	KeyDisplayCutoutHidden       = "display_cutout_hidden"
	KeyForceFullscreenCutoutApps = "force_full_screen_cutout_apps"
	KeyDisplayTemperatureDay     = "display_temperature_day"
	KeyDisplayTemperatureNight   = "display_temperature_night"
	KeyDisplayTemperatureMode    = "display_temperature_mode"
	KeyDisplayAutoOutdoorMode    = "display_auto_outdoor_mode"
	KeyDisplayReadingMode        = "display_reading_mode"
	KeyDisplayCABC               = "display_low_power"
	KeyDisplayColorEnhance       = "display_color_enhance"
	KeyDisplayAutoContrast       = "display_auto_contrast"
	KeyDisplayColorAdjustment    = "display_color_adjustment"
	KeyDisplayPictureAdjustment  = "display_picture_adjustment"
	KeyLiveDisplayHinted         = "live_display_hinted"

	// Notification light
	KeyNotificationLightPulse = "notification_light_pulse"

	// Misc
	KeyPocketJudge = "pocket_judge"
)
