// Package dates разбирает и форматирует даты для запросов к Data Connector.
//
// Сервис принимает даты без часового пояса и без долей секунды
// (2006-01-02T15:04:05). Пользовательский ввод разбирается нестрого:
// сначала форматы click DateTime, затем всё, что понимает jinzhu/now.
package dates
