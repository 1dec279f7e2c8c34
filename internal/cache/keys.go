package cache

const KeyWeatherReport = "weather:report"
